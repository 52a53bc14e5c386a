package aureon

import "math"

// Default gradient endpoints for percentage-based interpolation.
var (
	gradientLow  = RGBA(102, 110, 255, 255) // Indigo
	gradientHigh = RGBA(45, 199, 163, 255)  // Blue-green
)

// LerpRGB linearly interpolates between two packed colors as a function of t.
// Only the RGB channels are interpolated; the result is fully opaque.
func LerpRGB(start, end uint32, t float32) uint32 {
	r1, g1, b1, _ := UnpackRGBA(start)
	r2, g2, b2, _ := UnpackRGBA(end)
	return RGBA(
		lerpChannel(r1, r2, t),
		lerpChannel(g1, g2, t),
		lerpChannel(b1, b2, t),
		255,
	)
}

func lerpChannel(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t)
}

// InterpolatedColor interpolates the default indigo to blue-green gradient.
// The percentage is clamped to [0, 1].
func InterpolatedColor(percentage float32) uint32 {
	return LerpRGB(gradientLow, gradientHigh, clampf(percentage, 0, 1))
}

// InterpolatedColorBetween interpolates between two packed colors with the
// percentage clamped to [0, 1].
func InterpolatedColorBetween(percentage float32, start, end uint32) uint32 {
	return LerpRGB(start, end, clampf(percentage, 0, 1))
}

// Pulse oscillates between two colors over time. The elapsed time is passed
// explicitly (seconds since an arbitrary epoch) so the function stays pure;
// frequency is the angular speed of the oscillation in radians per second.
func Pulse(elapsed float32, start, end uint32, frequency float32) uint32 {
	percentage := (float32(math.Sin(float64(elapsed*frequency))) + 1) * 0.5
	return InterpolatedColorBetween(percentage, start, end)
}

// WithAlpha replaces the alpha channel of a packed color.
// Alpha is given as an opacity in [0, 1].
func WithAlpha(color uint32, alpha float32) uint32 {
	c := color & 0x00FFFFFF // mask out existing alpha
	return c | uint32(clampf(alpha, 0, 1)*255)<<24
}
