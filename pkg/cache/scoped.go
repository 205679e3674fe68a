package cache

// ScopedKeyer wraps a Keyer with a prefix so that several producers can share
// one backend without reading each other's entries.
//
// Example usage:
//
//	// Baselines from this machine only
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "host:buildbox-3:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// BaselineKey generates a prefixed baseline key.
func (k *ScopedKeyer) BaselineKey(workload, configHash string) string {
	return k.prefix + k.inner.BaselineKey(workload, configHash)
}
