package core

import "math"

// Closed-form rigid-body moments of inertia about the rig's rotation
// axis. All arguments are SI (kg, m); results are kg*m^2.

// SolidDiskInertia returns the inertia of a solid disk about its central
// axis, I = m*r^2/2. Shafts spinning about their own long axis use the
// same formula.
func SolidDiskInertia(m, r float64) float64 {
	return 0.5 * m * r * r
}

// HollowDiskInertia returns the inertia of a hollow disk about its
// central axis, I = m*(ri^2 + ro^2)/2. With ri = 0 it reduces to the
// solid-disk formula.
func HollowDiskInertia(m, ri, ro float64) float64 {
	return 0.5 * m * (ri*ri + ro*ro)
}

// PointMassInertia returns the inertia of n identical point masses on a
// circle of radius r, I = n*m*r^2.
func PointMassInertia(n int, m, r float64) float64 {
	return float64(n) * m * r * r
}

// PrismEndInertia returns the inertia of a thin rectangular prism about
// an axis through one end, parallel to an in-plane edge: the
// centre-of-mass term (1/12)*m*(l^2 + t^2) shifted to the end by the
// parallel-axis theorem.
func PrismEndInertia(m, l, t float64) float64 {
	return m*(l*l+t*t)/12.0 + m*(l/2)*(l/2)
}

// CylinderEndInertia returns the inertia of a solid cylinder about an
// axis perpendicular to its length through one end: the centre term
// (1/12)*m*(3r^2 + h^2) shifted to the end by the parallel-axis theorem.
func CylinderEndInertia(m, r, h float64) float64 {
	return m*(3*r*r+h*h)/12.0 + m*(h/2)*(h/2)
}

// CylinderVolume returns pi*r^2*h.
func CylinderVolume(r, h float64) float64 {
	return math.Pi * r * r * h
}

// AnnulusVolume returns pi*(ro^2 - ri^2)*h.
func AnnulusVolume(ri, ro, h float64) float64 {
	return math.Pi * (ro*ro - ri*ri) * h
}
