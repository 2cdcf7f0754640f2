package utils

import "testing"

func TestNormalizeNameLower(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Central  Sports   Academy ", "central sports academy"},
		{"TENNIS", "tennis"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeNameLower(tc.in); got != tc.want {
			t.Errorf("NormalizeNameLower(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchesSearch(t *testing.T) {
	if !MatchesSearch("", "anything") {
		t.Error("empty query should match everything")
	}
	if !MatchesSearch("ten", "Tennis Court", "west wing") {
		t.Error("query should match case-insensitively on any field")
	}
	if MatchesSearch("squash", "Tennis Court", "west wing") {
		t.Error("query should not match unrelated fields")
	}
	if !MatchesSearch("cafe", "Café Corner") {
		t.Error("query should match across accented characters")
	}
	if !MatchesSearch("olé", "Ole Sports Bar") {
		t.Error("accented query should match plain fields")
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock(09:30): %v", err)
	}
	if got != 9*60+30 {
		t.Errorf("ParseClock(09:30) = %d, want %d", got, 9*60+30)
	}

	if _, err := ParseClock("25:00"); err == nil {
		t.Error("ParseClock(25:00) should fail")
	}
	if _, err := ParseClock("noon"); err == nil {
		t.Error("ParseClock(noon) should fail")
	}
}
