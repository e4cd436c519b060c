package textutil

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "HelloWorld"},
		{"  leading and trailing  ", "leadingandtrailing"},
		{"tabs\tand\nnewlines", "tabsandnewlines"},
		{"no\u00a0break\u2003space", "nobreakspace"},
		{"", ""},
		{" \t\n ", ""},
		{"unchanged", "unchanged"},
	}
	for _, tc := range cases {
		if got := NormalizeKey(tc.in); got != tc.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	if got := Truncate("long enough to cut", 4); got != "long..." {
		t.Errorf("Truncate = %q, want long...", got)
	}
}
