//go:build !windows

package path

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		path Path
		want Path
	}{
		{"a/b/c", "a/b/c"},
		{"a//b", "a/b"},
		{"a/./b", "a/b"},
		{"a/b/../c", "a/c"},
		{"a/../../b", "../b"},
		{"a/./..", "."},
		{"", ""},
		{".", "."},
		{"a/b/", "a/b"},
	}
	for _, test := range tests {
		if got := Normalize(test.path); got != test.want {
			t.Errorf("Normalize(%q) = %q, want %q", test.path, got, test.want)
		}
	}
}
