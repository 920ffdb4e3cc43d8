package cmd

import (
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	if number(" 12.5 ") != 12.5 {
		t.Error("number should trim and parse")
	}
	if !math.IsNaN(number("")) || !math.IsNaN(number("abc")) {
		t.Error("unparseable input should be NaN")
	}
}

func TestUnitLabel(t *testing.T) {
	tests := map[string]string{
		"meter":     "Meter",
		"US gallon": "US gallon",
		"m/s":       "M/s",
		"":          "",
	}
	for in, want := range tests {
		if got := unitLabel(in); got != want {
			t.Errorf("unitLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCalcBillCommandValidation(t *testing.T) {
	cmd := calcBillCmd()
	cmd.SetArgs([]string{"--total", "0", "--people", "2"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err == nil || err.Error() != "Please enter a valid bill amount." {
		t.Errorf("err = %v", err)
	}
}
