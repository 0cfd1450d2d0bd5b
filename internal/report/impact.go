package report

import "github.com/greengirl/dashboard/internal/material"

// WaterPerOilLiter is how many liters of water one liter of collected
// cooking oil would have contaminated.
const WaterPerOilLiter = 25000.0

// WaterProtected returns the liters of water protected by the collected oil.
func WaterProtected(totals Totals) float64 {
	return totals[material.Oil] * WaterPerOilLiter
}
