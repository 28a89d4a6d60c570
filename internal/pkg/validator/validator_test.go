package validator

import (
	"strings"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidRollNo(t *testing.T) {
	valid := []string{"AM.EN.U4CSE21001", "cb_en_22", "r-123", "abc"}
	invalid := []string{"", "ab", "has space", "roll#1", strings.Repeat("a", 31)}
	for _, rollNo := range valid {
		if !IsValidRollNo(rollNo) {
			t.Errorf("IsValidRollNo(%q) = false, want true", rollNo)
		}
	}
	for _, rollNo := range invalid {
		if IsValidRollNo(rollNo) {
			t.Errorf("IsValidRollNo(%q) = true, want false", rollNo)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("2024") {
		t.Error("IsNumeric(\"2024\") = false, want true")
	}
	for _, s := range []string{"", "12a", "-5", "1.5"} {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-02-28")
	if !ok {
		t.Fatal("IsValidDate(\"2026-02-28\") = false, want true")
	}
	if date.Year() != 2026 || date.Month() != 2 || date.Day() != 28 {
		t.Errorf("IsValidDate parsed %v", date)
	}

	for _, s := range []string{"", "2026-13-01", "2026-02-30", "28-02-2026", "2026/02/28"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	for year := 1; year <= 5; year++ {
		if !IsValidYear(year) {
			t.Errorf("IsValidYear(%d) = false, want true", year)
		}
	}
	for _, year := range []int{0, -1, 6, 100} {
		if IsValidYear(year) {
			t.Errorf("IsValidYear(%d) = true, want false", year)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin", "office.bearer", "ob_2026", "a-b"}
	invalid := []string{"", "has space", "user@domain"}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "year", Message: "year must be between 1 and 5"},
	}

	want := "name: name is required; year: year must be between 1 and 5"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if m["name"] != "name is required" || m["year"] != "year must be between 1 and 5" {
		t.Errorf("ToMap() = %v", m)
	}
}
