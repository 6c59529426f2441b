package buildinfo

import "testing"

func TestShort(t *testing.T) {
	v, c := Version, Commit
	t.Cleanup(func() { Version, Commit = v, c })

	Version, Commit = "dev", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("Short() = %q, want dev", got)
	}
	Commit = "abc1234"
	if got := Short(); got != "abc1234" {
		t.Fatalf("Short() = %q, want commit", got)
	}
	Version = "v0.3.0"
	if got := Short(); got != "v0.3.0" {
		t.Fatalf("Short() = %q, want version", got)
	}
}

func TestString(t *testing.T) {
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })

	Version, Commit, Date = "v1.0.0", "deadbee", "2026-10-17"
	if got, want := String(), "spheretrace v1.0.0 (commit deadbee, built 2026-10-17)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
