package buildinfo

import "testing"

func TestString(t *testing.T) {
	Version, Commit, Date = "v1.2.0", "abc123", "2022-12-05"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	want := "advent v1.2.0 (commit=abc123, date=2022-12-05)"
	if got := String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
