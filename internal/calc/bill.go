package calc

import "math"

type BillSplit struct {
	Total      float64 `json:"total"`
	People     int     `json:"people"`
	TipPercent float64 `json:"tipPercent"`
	TipAmount  float64 `json:"tipAmount"`
	GrandTotal float64 `json:"grandTotal"`
	PerPerson  float64 `json:"perPerson"`
}

// SplitBill divides total plus tip evenly. A NaN tip counts as no tip.
func SplitBill(total float64, people int, tipPercent float64) (*BillSplit, error) {
	if notPositive(total) || math.IsInf(total, 0) {
		return nil, invalid("total", "Please enter a valid bill amount.")
	}
	if people < 1 {
		return nil, invalid("people", "Please enter at least 1 person.")
	}
	if math.IsNaN(tipPercent) {
		tipPercent = 0
	}

	tip := total * (tipPercent / 100)
	grand := total + tip

	return &BillSplit{
		Total:      total,
		People:     people,
		TipPercent: tipPercent,
		TipAmount:  tip,
		GrandTotal: grand,
		PerPerson:  grand / float64(people),
	}, nil
}
