package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFunctions(t *testing.T) {
	origVersion := Version
	origBuildDate := BuildDate
	origCommit := Commit
	defer func() {
		Version = origVersion
		BuildDate = origBuildDate
		Commit = origCommit
	}()

	tests := []struct {
		name      string
		version   string
		buildDate string
		commit    string
		wantFull  string
		wantShort string
	}{
		{
			name:      "default dev build",
			version:   "dev",
			buildDate: "unknown",
			commit:    "unknown",
			wantFull:  "simple_todo dev (commit: unknown, built: unknown)",
			wantShort: "dev",
		},
		{
			name:      "tagged release",
			version:   "v0.3.1",
			buildDate: "2026-10-19",
			commit:    "9f2c1e7",
			wantFull:  "simple_todo v0.3.1 (commit: 9f2c1e7, built: 2026-10-19)",
			wantShort: "v0.3.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			BuildDate = tt.buildDate
			Commit = tt.commit

			assert.Equal(t, tt.wantFull, GetVersion())
			assert.Equal(t, tt.wantShort, GetShortVersion())
		})
	}
}
