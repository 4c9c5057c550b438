package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		expected string
	}{
		{name: "development without commit", version: "development", commit: "unknown", expected: "development"},
		{name: "release with commit", version: "0.1.0", commit: "abc1234", expected: "0.1.0+abc1234"},
		{name: "release without commit", version: "1.2.0", commit: "unknown", expected: "1.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit := Version, Commit
			t.Cleanup(func() {
				Version = origVersion
				Commit = origCommit
			})

			Version = tt.version
			Commit = tt.commit
			assert.Equal(t, tt.expected, String())
		})
	}
}

func TestBanner(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() {
		Version = origVersion
		Commit = origCommit
	})
	Version, Commit = "0.2.0", "unknown"

	assert.Equal(t, "okay-you-very-pro 0.2.0", Banner("okay-you-very-pro"))
}
