package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, version, buildTime, commit string) {
	t.Helper()

	originalVersion, originalBuildTime, originalGitCommit := Version, BuildTime, GitCommit
	t.Cleanup(func() {
		Version, BuildTime, GitCommit = originalVersion, originalBuildTime, originalGitCommit
	})

	Version, BuildTime, GitCommit = version, buildTime, commit
}

func withEmbedded(t *testing.T, info *debug.BuildInfo) {
	t.Helper()

	original := readBuildInfo
	t.Cleanup(func() { readBuildInfo = original })

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return info, info != nil
	}
}

func TestGet(t *testing.T) {
	withEmbedded(t, nil)
	assert.Equal(t, "dev", Get())

	withBuildInfo(t, "1.2.3", "unknown", "unknown")
	assert.Equal(t, "1.2.3", Get())
}

func TestInfo(t *testing.T) {
	withEmbedded(t, nil)
	assert.Equal(t, BuildInfo{Version: "dev", BuildTime: "unknown", GitCommit: "unknown"}, Info())

	withBuildInfo(t, "2.1.0", "2025-08-01T10:00:00Z", "abc123def456")
	assert.Equal(t, BuildInfo{Version: "2.1.0", BuildTime: "2025-08-01T10:00:00Z", GitCommit: "abc123def456"}, Info())
}

func TestInfo_EmbeddedFallback(t *testing.T) {
	embedded := &debug.BuildInfo{
		Main: debug.Module{Path: "formvalidator", Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2025-09-30T08:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name     string
		setup    func(t *testing.T)
		expected BuildInfo
	}{
		{
			name:  "nothing_injected",
			setup: func(*testing.T) {},
			expected: BuildInfo{
				Version:   "v1.4.0",
				BuildTime: "2025-09-30T08:00:00Z",
				GitCommit: "0123456789ab",
				Modified:  true,
			},
		},
		{
			name: "ldflags_win",
			setup: func(t *testing.T) {
				withBuildInfo(t, "1.5.0", "2025-10-01T00:00:00Z", "feedface")
			},
			expected: BuildInfo{
				Version:   "1.5.0",
				BuildTime: "2025-10-01T00:00:00Z",
				GitCommit: "feedface",
				Modified:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEmbedded(t, embedded)
			tt.setup(t)

			assert.Equal(t, tt.expected, Info())
		})
	}
}

func TestInfo_DevelModuleVersionIgnored(t *testing.T) {
	withEmbedded(t, &debug.BuildInfo{Main: debug.Module{Path: "formvalidator", Version: "(devel)"}})

	assert.Equal(t, "dev", Get())
}

func TestBuildInfo_String(t *testing.T) {
	withEmbedded(t, nil)
	withBuildInfo(t, "2.1.0", "2025-08-01T10:00:00Z", "abc123def456")

	assert.Equal(t, "2.1.0 (commit abc123def456, built 2025-08-01T10:00:00Z)", Info().String())

	dirty := Info()
	dirty.Modified = true
	assert.Equal(t, "2.1.0 (commit abc123def456+dirty, built 2025-08-01T10:00:00Z)", dirty.String())
}
