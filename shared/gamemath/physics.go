package gamemath

// ClampRange clamps v to the closed range [lo, hi].
// When lo > hi the range is empty and hi wins, which pins the value at the upper bound.
func ClampRange(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyGravity integrates a downward acceleration (y up) over dt seconds and
// caps the resulting fall speed.
func ApplyGravity(speedY, gravity, maxFall, dt float64) float64 {
	speedY -= gravity * dt
	if speedY < -maxFall {
		speedY = -maxFall
	}
	return speedY
}
