package pv_irradiance_calc

import "math"

/*
Determine the diffuse irradiance from the sky on a tilted surface using
Reindl's 1990 model.

The model extends Hay and Davies' circumsolar/isotropic blend with a horizon
brightening correction (1 + F * sin^3(tilt/2)) modulated by the beam
fraction F = sqrt(HB / GHI), where HB is the beam irradiance projected on
the horizontal plane.

Args:
    srf: tilted surface
    dhi_ns: diffuse horizontal irradiance at step n (>= 0), W/m2, [n]
    dni_ns: direct normal irradiance at step n (>= 0), W/m2, [n]
    ghi_ns: global horizontal irradiance at step n (>= 0), W/m2, [n]
    h_extra_ns: extraterrestrial normal irradiance at step n (> 0), W/m2, [n]
    sun_zenith_ns: apparent sun zenith angle at step n (0-180), deg, [n]
    sun_azimuth_ns: sun azimuth angle at step n in degrees east of north, deg, [n]

Returns:
    sky diffuse irradiance on the tilted surface at step n, W/m2, [n]

Notes:
    GHI is floored at 1e-6 on a local copy to guard the division in the
    beam fraction; HB is floored at 0. As with Hay-Davies, h_extra_ns > 0
    is a precondition.
    Reindl, Beckman & Duffie (1990), Solar Energy 45, pp. 1-7 and 9-17;
    Loutzenhiser et al. (2007), equation 8 (beam and ground reflection
    terms removed).
*/
func Reindl1990(srf Surface, dhi_ns, dni_ns, ghi_ns, h_extra_ns, sun_zenith_ns, sun_azimuth_ns []float64) []float64 {
	const small = 1e-6

	// cosine of the angle of incidence at step n, -, [n]
	cos_tt_ns := _get_cos_tt_ns(srf, sun_zenith_ns, sun_azimuth_ns)

	// beam transposition ratio at step n, -, [n]
	rb_ns := _get_rb_ns(cos_tt_ns, sun_zenith_ns)

	// view factor of the tilted surface to the sky dome, -
	f_sky := (1.0 + _cosd(srf.SurfTilt)) / 2.0

	// sin^3 of the half tilt angle, -
	scube := math.Pow(_sind(srf.SurfTilt*0.5), 3.0)

	sky_diffuse_ns := make([]float64, len(dhi_ns))
	for i, dhi := range dhi_ns {
		// anisotropy index, -
		ai := dni_ns[i] / h_extra_ns[i]

		ghi := math.Max(ghi_ns[i], small)

		// beam irradiance on the horizontal plane, W/m2
		hb := math.Max(dni_ns[i]*_cosd(sun_zenith_ns[i]), 0.0)

		// beam fraction modulating the horizon brightening, -
		f := math.Sqrt(hb / ghi)

		sky_diffuse_ns[i] = dhi * (ai*rb_ns[i] + (1.0-ai)*f_sky*(1.0+f*scube))
	}

	return sky_diffuse_ns
}
