package n2yo

import "testing"

func TestEndpointURLFormat(t *testing.T) {
	c, err := NewClient(Options{APIKey: "KEY"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	got := c.endpointURL(false, "tle", "25544")
	want := "https://api.n2yo.com/rest/v1/satellite/tle/25544&apiKey=KEY"
	if got != want {
		t.Errorf("tle url: got %q, want %q", got, want)
	}

	got = c.endpointURL(true, "above", formatCoord(40.7), formatCoord(-74.0), formatCoord(10), "90", "0")
	want = "https://api.n2yo.com/rest/v1/satellite/above/40.7/-74/10/90/0/&apiKey=KEY"
	if got != want {
		t.Errorf("above url: got %q, want %q", got, want)
	}
}

func TestEndpointURLEscapesAPIKey(t *testing.T) {
	c, err := NewClient(Options{APIKey: "AB&CD EF"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	got := c.endpointURL(false, "tle", "25544")
	want := "https://api.n2yo.com/rest/v1/satellite/tle/25544&apiKey=AB%26CD+EF"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatCoord(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{40.7, "40.7"},
		{-74.0, "-74"},
		{0, "0"},
		{10.125, "10.125"},
		{-0.0001, "-0.0001"},
	}
	for _, tc := range cases {
		if got := formatCoord(tc.in); got != tc.want {
			t.Errorf("formatCoord(%v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRedactURL(t *testing.T) {
	got := redactURL("https://api.n2yo.com/rest/v1/satellite/tle/25544&apiKey=SECRET")
	want := "https://api.n2yo.com/rest/v1/satellite/tle/25544&apiKey=***"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	plain := "https://example.com/no-key"
	if got := redactURL(plain); got != plain {
		t.Errorf("url without key must pass through, got %q", got)
	}
}
