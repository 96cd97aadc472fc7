package http

import "testing"

func TestNatsSubject(t *testing.T) {
	cases := []struct {
		channel, site string
		want          string
		ok            bool
	}{
		{"", "", "sky.frames.>", true},
		{"frames", "", "sky.frames.>", true},
		{"frames", "santo-domingo", "sky.frames.santo-domingo", true},
		{"events", "", "sky.events.>", true},
		{"events", "oslo", "sky.events.oslo", true},
		{"updates", "", "sky.updates.broadcast", true},
		{"updates", "oslo", "sky.updates.broadcast", true},
		{"bogus", "", "", false},
	}
	for _, tc := range cases {
		got, ok := natsSubject(tc.channel, tc.site)
		if got != tc.want || ok != tc.ok {
			t.Errorf("natsSubject(%q, %q) = %q, %v; want %q, %v",
				tc.channel, tc.site, got, ok, tc.want, tc.ok)
		}
	}
}
