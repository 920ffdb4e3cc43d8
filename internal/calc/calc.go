// Package calc holds the arithmetic behind the site's calculator tools.
// Every function validates its inputs and reports problems as a
// *ValidationError whose message is meant for the end user.
package calc

import (
	"math"
	"strconv"
	"strings"
)

// ValidationError carries a message suitable for showing to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// FormatResult renders v with at most six decimals and no trailing zeros.
func FormatResult(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatMoney renders an amount in rupees with two decimals.
func FormatMoney(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', 2, 64)
}

func notPositive(v float64) bool {
	return math.IsNaN(v) || v <= 0
}
