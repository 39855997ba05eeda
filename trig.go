package pv_irradiance_calc

import "math"

// Angles cross the package boundary in decimal degrees; the conversion to
// radians happens only inside these helpers.

// Cosine of an angle given in decimal degrees.
func _cosd(deg float64) float64 {
	const to_rad = math.Pi / 180.0
	return math.Cos(deg * to_rad)
}

// Sine of an angle given in decimal degrees.
func _sind(deg float64) float64 {
	const to_rad = math.Pi / 180.0
	return math.Sin(deg * to_rad)
}

/*
Calculate the cosine of the angle of incidence between the solar ray and the
normal of the tilted surface.

Args:
    srf: tilted surface
    sun_zenith_ns: apparent sun zenith angle at step n, deg, [n]
    sun_azimuth_ns: sun azimuth angle at step n, deg, [n]

Returns:
    cosine of the angle of incidence at step n, -, [n]

Notes:
    A negative cosine means the sun is behind the surface.
    The value is returned unclamped; each model applies its own floor.
*/
func _get_cos_tt_ns(srf Surface, sun_zenith_ns, sun_azimuth_ns []float64) []float64 {
	cos_tilt := _cosd(srf.SurfTilt)
	sin_tilt := _sind(srf.SurfTilt)

	cos_tt_ns := make([]float64, len(sun_zenith_ns))
	for i, sun_zenith := range sun_zenith_ns {
		cos_tt_ns[i] = cos_tilt*_cosd(sun_zenith) +
			sin_tilt*_sind(sun_zenith)*_cosd(sun_azimuth_ns[i]-srf.SurfAz)
	}

	return cos_tt_ns
}

/*
Calculate the ratio between the beam irradiance on the tilted surface and the
beam irradiance on the horizontal plane.

Args:
    cos_tt_ns: cosine of the angle of incidence at step n, -, [n]
    sun_zenith_ns: apparent sun zenith angle at step n, deg, [n]

Returns:
    beam transposition ratio at step n, -, [n]

Notes:
    The numerator is floored at 0 (sun behind the surface receives no beam).
    The denominator is floored at cos(89 deg) = 0.01745 so that the ratio
    does not blow up when the sun approaches the horizon.
*/
func _get_rb_ns(cos_tt_ns, sun_zenith_ns []float64) []float64 {
	// lower limit of the zenith cosine, cos(89 deg)
	const cos_zen_min = 0.01745

	rb_ns := make([]float64, len(cos_tt_ns))
	for i, cos_tt := range cos_tt_ns {
		rb_ns[i] = math.Max(cos_tt, 0.0) / math.Max(_cosd(sun_zenith_ns[i]), cos_zen_min)
	}

	return rb_ns
}
