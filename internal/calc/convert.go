package calc

import (
	"fmt"
	"math"
)

const Temperature = "temperature"

type unit struct {
	name   string
	factor float64 // multiples of the category's base unit
}

// unitTable lists units in display order; the first unit of each category is its base.
var unitTable = map[string][]unit{
	"length": {
		{"meter", 1},
		{"kilometer", 1000},
		{"centimeter", 0.01},
		{"millimeter", 0.001},
		{"mile", 1609.344},
		{"yard", 0.9144},
		{"foot", 0.3048},
		{"inch", 0.0254},
	},
	"weight": {
		{"kilogram", 1},
		{"gram", 0.001},
		{"milligram", 0.000001},
		{"pound", 0.453592},
		{"ounce", 0.0283495},
		{"stone", 6.35029},
		{"metric ton", 1000},
	},
	Temperature: {
		{"celsius", 0},
		{"fahrenheit", 0},
		{"kelvin", 0},
	},
	"volume": {
		{"liter", 1},
		{"milliliter", 0.001},
		{"US gallon", 3.78541},
		{"US quart", 0.946353},
		{"US cup", 0.236588},
		{"US fluid ounce", 0.0295735},
		{"UK gallon", 4.54609},
		{"cubic meter", 1000},
	},
	"speed": {
		{"m/s", 1},
		{"km/h", 0.277778},
		{"mph", 0.44704},
		{"knot", 0.514444},
		{"ft/s", 0.3048},
	},
}

// Categories returns the conversion categories in display order.
func Categories() []string {
	return []string{"length", "weight", Temperature, "volume", "speed"}
}

// Units returns the unit names of category in display order, or nil if unknown.
func Units(category string) []string {
	units, ok := unitTable[category]
	if !ok {
		return nil
	}
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.name
	}
	return names
}

func lookup(category, name string) (unit, bool) {
	for _, u := range unitTable[category] {
		if u.name == name {
			return u, true
		}
	}
	return unit{}, false
}

// Convert expresses value in from units as to units of the same category.
func Convert(category string, value float64, from, to string) (float64, error) {
	if math.IsNaN(value) {
		return 0, invalid("value", "Please enter a valid number.")
	}
	if _, ok := unitTable[category]; !ok {
		return 0, invalid("category", fmt.Sprintf("Unknown category %q.", category))
	}
	fromUnit, ok := lookup(category, from)
	if !ok {
		return 0, invalid("from", fmt.Sprintf("Unknown %s unit %q.", category, from))
	}
	toUnit, ok := lookup(category, to)
	if !ok {
		return 0, invalid("to", fmt.Sprintf("Unknown %s unit %q.", category, to))
	}

	if category == Temperature {
		return convertTemperature(value, from, to), nil
	}
	return value * fromUnit.factor / toUnit.factor, nil
}

// convertTemperature routes every conversion through Celsius.
func convertTemperature(value float64, from, to string) float64 {
	var celsius float64
	switch from {
	case "fahrenheit":
		celsius = (value - 32) * 5 / 9
	case "kelvin":
		celsius = value - 273.15
	default:
		celsius = value
	}

	switch to {
	case "fahrenheit":
		return celsius*9/5 + 32
	case "kelvin":
		return celsius + 273.15
	default:
		return celsius
	}
}
