package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFrom(t *testing.T) {
	saveVersion, saveCommit, saveDate := Version, Commit, Date
	defer func() { Version, Commit, Date = saveVersion, saveCommit, saveDate }()

	tests := []struct {
		name        string
		version     string
		info        *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name:    "module version used when unset",
			version: "dev",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
			},
			wantVersion: "v0.3.0",
			wantCommit:  "abc123",
		},
		{
			name:        "devel version ignored",
			version:     "dev",
			info:        &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			wantVersion: "dev",
			wantCommit:  "none",
		},
		{
			name:        "ldflags win",
			version:     "v1.0.0",
			info:        &debug.BuildInfo{Main: debug.Module{Version: "v0.3.0"}},
			wantVersion: "v1.0.0",
			wantCommit:  "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, "none", "unknown"
			fillFrom(tt.info)
			if Version != tt.wantVersion {
				t.Errorf("Version = %v, want %v", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %v, want %v", Commit, tt.wantCommit)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q, want cobra name placeholder", tmpl)
	}
	if !strings.Contains(String(), "go: go") {
		t.Errorf("String() = %q, want Go runtime line", String())
	}
}
