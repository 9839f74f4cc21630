package space

import "math"

// RGBToOKLCH converts sRGB channels to OKLCH. L is in [0, 1], C is
// non-negative and H is in degrees [0, 360).
func RGBToOKLCH(r, g, b float64) (l, c, h float64) {
	lr := Linearize(r)
	lg := Linearize(g)
	lb := Linearize(b)

	// linear sRGB -> LMS cone responses
	lm := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	mm := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	sm := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	lp := math.Cbrt(lm)
	mp := math.Cbrt(mm)
	sp := math.Cbrt(sm)

	// LMS' -> OKLab
	l = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	bb := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	c, h = toPolar(a, bb)
	return l, c, h
}

// OKLCHToRGB converts OKLCH to sRGB channels clamped to [0, 1].
func OKLCHToRGB(l, c, h float64) (r, g, b float64) {
	a, bb := fromPolar(c, h)

	// OKLab -> LMS'
	lp := l + 0.3963377774*a + 0.2158037573*bb
	mp := l - 0.1055613458*a - 0.0638541728*bb
	sp := l - 0.0894841775*a - 1.2914855480*bb

	lm := lp * lp * lp
	mm := mp * mp * mp
	sm := sp * sp * sp

	// LMS -> linear sRGB
	lr := 4.0767416621*lm - 3.3077115913*mm + 0.2309699292*sm
	lg := -1.2684380046*lm + 2.6097574011*mm - 0.3413193965*sm
	lb := -0.0041960863*lm - 0.7034186147*mm + 1.7076147010*sm

	return encode(lr), encode(lg), encode(lb)
}
