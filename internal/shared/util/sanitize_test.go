package util

import "testing"

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "main", want: "main"},
		{in: "  spaced  ", want: "spaced"},
		{in: "backend role 2026", want: "backend role 2026"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "../etc/passwd", wantErr: true},
		{in: "a/b", wantErr: true},
		{in: `a\b`, wantErr: true},
	}
	for _, tc := range cases {
		got, err := SanitizeName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("SanitizeName(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("SanitizeName(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
