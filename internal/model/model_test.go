package model

import "testing"

func TestFormatStat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{20, "20"},
		{0, "0"},
		{2.5, "2.5"},
		{250.5, "250.5"},
		{13, "13"},
	}
	for _, tc := range cases {
		if got := FormatStat(tc.in); got != tc.want {
			t.Errorf("FormatStat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBaseName(t *testing.T) {
	cases := []struct {
		ign  string
		want string
	}{
		{"Ana#NA1", "Ana"},
		{"Ana", "Ana"},
		{"#NA1", ""},
		{"Unknown", "Unknown"},
	}
	for _, tc := range cases {
		p := Player{IGN: tc.ign}
		if got := p.BaseName(); got != tc.want {
			t.Errorf("BaseName(%q) = %q, want %q", tc.ign, got, tc.want)
		}
	}
}
