package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Camera produces world-space rays for (possibly fractional) pixel coordinates
// and exposes its current coordinate frame
type Camera interface {
	GetRay(x, y float64) Ray
	GetFrame() Frame
}
