package systems

import cfg "github.com/automoto/pushbutton/config"

// The collision plane is a side view of the rig: plane X follows world X,
// plane Y grows downward and is measured in cfg.Collision units.

func PlaneX(x float64) float64 {
	return cfg.Collision.OriginX + x*cfg.Collision.UnitsPerMeter
}

func PlaneY(y float64) float64 {
	return cfg.Collision.OriginY - y*cfg.Collision.UnitsPerMeter
}

func WorldX(px float64) float64 {
	return (px - cfg.Collision.OriginX) / cfg.Collision.UnitsPerMeter
}

func WorldY(py float64) float64 {
	return (cfg.Collision.OriginY - py) / cfg.Collision.UnitsPerMeter
}

// PlaneRect converts a world box given by its bottom-center, width and height
// into a plane rectangle (top-left corner and size).
func PlaneRect(centerX, bottom, width, height float64) (x, y, w, h float64) {
	u := cfg.Collision.UnitsPerMeter
	return PlaneX(centerX - width/2), PlaneY(bottom + height), width * u, height * u
}
