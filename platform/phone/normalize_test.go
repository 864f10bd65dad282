package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(212) 555-0123", "+12125550123"},
		{"212-555-0123", "+12125550123"},
		{"+44 20 7946 0958", "+442079460958"},
		{"  +12125550123  ", "+12125550123"},
		{"not a phone", "not a phone"},
		{"123", "123"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := NormalizeE164(tc.in); got != tc.want {
			t.Fatalf("NormalizeE164(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
