package calc

import (
	"math"
	"strconv"
)

type bmiCategory struct {
	max   float64
	label string
	color string
}

// Thresholds are exclusive upper bounds, checked in order.
var bmiCategories = []bmiCategory{
	{16, "Severely Underweight", "#5eb3f0"},
	{18.5, "Underweight", "#66ccff"},
	{25, "Normal Weight", "#4ade80"},
	{30, "Overweight", "#fbbf24"},
	{35, "Obese Class I", "#f87171"},
	{40, "Obese Class II", "#ef4444"},
	{math.Inf(1), "Obese Class III", "#dc2626"},
}

// gauge spans BMI 10 to 50
const (
	gaugeMin   = 10.0
	gaugeRange = 40.0
)

type BMIResult struct {
	Value        float64 `json:"value"`
	Display      string  `json:"display"`
	Category     string  `json:"category"`
	Color        string  `json:"color"`
	GaugePercent float64 `json:"gaugePercent"`
}

func BMI(weightKg, heightCm float64) (*BMIResult, error) {
	if notPositive(weightKg) || math.IsInf(weightKg, 0) {
		return nil, invalid("weight", "Please enter a valid weight.")
	}
	if notPositive(heightCm) || math.IsInf(heightCm, 0) {
		return nil, invalid("height", "Please enter a valid height.")
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	cat := bmiCategories[len(bmiCategories)-1]
	for _, c := range bmiCategories {
		if bmi < c.max {
			cat = c
			break
		}
	}

	percent := (bmi - gaugeMin) / gaugeRange * 100
	percent = math.Min(math.Max(percent, 0), 100)

	return &BMIResult{
		Value:        bmi,
		Display:      strconv.FormatFloat(bmi, 'f', 1, 64),
		Category:     cat.label,
		Color:        cat.color,
		GaugePercent: percent,
	}, nil
}
