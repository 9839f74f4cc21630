// Package space implements the numeric color-space transforms the
// conversion engine is built on: the sRGB transfer function, HSL and HWB,
// and the device-independent CIELCH and OKLCH pipelines.
//
// All RGB channel values are normalized floats in [0, 1]; hue angles are
// degrees. Saturation, lightness, whiteness and blackness are fractions
// in [0, 1].
package space

import "math"

// Linearize undoes the sRGB transfer function on a single channel.
func Linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Delinearize applies the sRGB transfer function to a single linear channel.
func Delinearize(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// Clamp01 clamps a value to the [0, 1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// encode clamps a linear channel into [0, 1], gamma-encodes it, and clamps
// the encoded result. The leading clamp keeps out-of-gamut values off the
// fractional power function.
func encode(v float64) float64 {
	return Clamp01(Delinearize(Clamp01(v)))
}

// HSLToRGB converts hue (degrees, any value), saturation and lightness to
// sRGB channels.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		a := s * math.Min(l, 1-l)
		return l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
	}
	return f(0), f(8), f(4)
}

// RGBToHSL converts sRGB channels to hue (degrees in [0, 360)), saturation
// and lightness.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l
}

// HWBToRGB converts hue (degrees), whiteness and blackness to sRGB
// channels. When whiteness+blackness reaches 1 the hue no longer matters
// and the result is the achromatic gray w/(w+b); the inequality also keeps
// the division away from zero.
func HWBToRGB(h, w, bk float64) (r, g, b float64) {
	if w+bk >= 1 {
		gray := w / (w + bk)
		return gray, gray, gray
	}
	r, g, b = HSLToRGB(h, 1, 0.5)
	mix := func(c float64) float64 { return c*(1-w-bk) + w }
	return mix(r), mix(g), mix(b)
}

// RGBToHWB converts sRGB channels to hue (degrees in [0, 360)), whiteness
// and blackness.
func RGBToHWB(r, g, b float64) (h, w, bk float64) {
	h, _, _ = RGBToHSL(r, g, b)
	w = math.Min(r, math.Min(g, b))
	bk = 1 - math.Max(r, math.Max(g, b))
	return h, w, bk
}

// toPolar converts the cartesian a/b plane of a Lab-like space to chroma
// and a hue angle in degrees [0, 360).
func toPolar(a, b float64) (c, h float64) {
	c = math.Sqrt(a*a + b*b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return c, h
}

// fromPolar converts chroma and a hue angle in degrees back to the
// cartesian a/b plane.
func fromPolar(c, h float64) (a, b float64) {
	hr := h * math.Pi / 180
	return c * math.Cos(hr), c * math.Sin(hr)
}
