package version

import "testing"

func TestVersionHasADefaultValue(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestGitCommitAndBuildDateAreOptional(t *testing.T) {
	if GitCommit != "" {
		t.Errorf("GitCommit = %q, want empty absent -ldflags overrides", GitCommit)
	}
	if BuildDate != "" {
		t.Errorf("BuildDate = %q, want empty absent -ldflags overrides", BuildDate)
	}
}

func TestVersionCanBeOverriddenLikeLdflagsWould(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2024-01-15T10:30:00Z")
	}
}
