package space

import "math"

// D65 reference white, Y normalized to 1.
const (
	refX = 0.95047
	refY = 1.00000
	refZ = 1.08883
)

// labF is the forward CIE transfer function, switching from cube root to a
// linear segment below the (6/29)³ threshold.
func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

// labFInv is the inverse of labF.
func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// RGBToLCH converts sRGB channels to CIELCH under D65. L is in [0, 100],
// C is non-negative and H is in degrees [0, 360).
func RGBToLCH(r, g, b float64) (l, c, h float64) {
	lr := Linearize(r)
	lg := Linearize(g)
	lb := Linearize(b)

	x := 0.4124564*lr + 0.3575761*lg + 0.1804375*lb
	y := 0.2126729*lr + 0.7151522*lg + 0.0721750*lb
	z := 0.0193339*lr + 0.1191920*lg + 0.9503041*lb

	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	// Y=0 maps to exactly L=0 in real arithmetic; keep float fuzz in the
	// 4/29 constant from flipping the sign.
	l = math.Max(0, 116*fy-16)
	a := 500 * (fx - fy)
	bb := 200 * (fy - fz)

	c, h = toPolar(a, bb)
	return l, c, h
}

// LCHToRGB converts CIELCH (D65) to sRGB channels clamped to [0, 1].
func LCHToRGB(l, c, h float64) (r, g, b float64) {
	a, bb := fromPolar(c, h)

	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - bb/200

	x := refX * labFInv(fx)
	y := refY * labFInv(fy)
	z := refZ * labFInv(fz)

	lr := 3.2404542*x - 1.5371385*y - 0.4985314*z
	lg := -0.9692660*x + 1.8760108*y + 0.0415560*z
	lb := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return encode(lr), encode(lg), encode(lb)
}
