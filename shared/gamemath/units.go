package gamemath

// MetersPerInch is the fixed inch to meter factor used for all authored lengths.
const MetersPerInch = 0.0254

// InchToMeter converts an authored length in inches to engine meters.
func InchToMeter(inches float64) float64 {
	return inches * MetersPerInch
}

// MeterToInch is the inverse of InchToMeter, used for HUD readouts.
func MeterToInch(meters float64) float64 {
	return meters / MetersPerInch
}
