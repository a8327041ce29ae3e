package main

import "testing"

func TestResolveLogFormat(t *testing.T) {
	cases := []struct {
		format string
		tty    bool
		want   string
	}{
		{"auto", true, "console"},
		{"auto", false, "json"},
		{"console", false, "console"},
		{"json", true, "json"},
	}
	for _, tc := range cases {
		if got := resolveLogFormat(tc.format, tc.tty); got != tc.want {
			t.Fatalf("resolveLogFormat(%q, %v) = %q, want %q", tc.format, tc.tty, got, tc.want)
		}
	}
}
