package compound

import "testing"

// mustParseInput is a helper for tests to build an Input from command line text.
func mustParseInput(t *testing.T, args ...string) Input {
	t.Helper()
	in, err := ParseInput(args)
	if err != nil {
		t.Fatalf("ParseInput(%q) unexpected error: %v", args, err)
	}
	return in
}
