package errors

import (
	"strings"
	"time"
	"unicode"
)

// maxWorkloadNameLength bounds names accepted from the command line and from
// configuration files.
const maxWorkloadNameLength = 64

// ValidateWorkloadName checks that name is a plausible workload identifier:
// non-empty, short, and made of letters, digits, '-' or '_'. It does not check
// that the workload is registered.
func ValidateWorkloadName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "workload name cannot be empty")
	}

	if len(name) > maxWorkloadNameLength {
		return New(ErrCodeInvalidInput, "workload name too long (max %d characters)", maxWorkloadNameLength)
	}

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return New(ErrCodeInvalidInput, "workload name contains invalid character %q", r)
	}

	return nil
}

// ValidatePositiveDuration rejects zero and negative durations. field names
// the offending setting in the message.
func ValidatePositiveDuration(field string, d time.Duration) error {
	if d <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %s", field, d)
	}
	return nil
}

// ValidateSize rejects sizes below minimum. field names the offending setting in
// the message.
func ValidateSize(field string, n, minimum int) error {
	if n < minimum {
		return New(ErrCodeInvalidConfig, "%s must be at least %d, got %d", field, minimum, n)
	}
	return nil
}

// ValidateRedisAddr checks that addr looks like host:port. An empty address
// is valid and means "no Redis".
func ValidateRedisAddr(addr string) error {
	if addr == "" {
		return nil
	}

	if strings.ContainsAny(addr, " \t\r\n/") {
		return New(ErrCodeInvalidConfig, "redis address %q contains invalid characters", addr)
	}

	i := strings.LastIndex(addr, ":")
	if i < 0 || i == len(addr)-1 {
		return New(ErrCodeInvalidConfig, "redis address %q must be host:port", addr)
	}

	for _, r := range addr[i+1:] {
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidConfig, "redis address %q has a non-numeric port", addr)
		}
	}

	return nil
}
