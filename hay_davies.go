package pv_irradiance_calc

/*
Determine the diffuse irradiance from the sky on a tilted surface using Hay
and Davies' 1980 model.

The sky diffuse irradiance is a linear blend between a circumsolar component
transposed like the beam (weight AI) and an isotropic component (weight
1 - AI), where the anisotropy index AI = DNI / HExtra expresses which
fraction of the extraterrestrial irradiance reaches the ground as beam.

Args:
    srf: tilted surface
    dhi_ns: diffuse horizontal irradiance at step n (>= 0), W/m2, [n]
    dni_ns: direct normal irradiance at step n (>= 0), W/m2, [n]
    h_extra_ns: extraterrestrial normal irradiance at step n (> 0), W/m2, [n]
    sun_zenith_ns: apparent sun zenith angle at step n (0-180), deg, [n]
    sun_azimuth_ns: sun azimuth angle at step n in degrees east of north, deg, [n]

Returns:
    sky diffuse irradiance on the tilted surface at step n, W/m2, [n]

Notes:
    h_extra_ns = 0 divides by zero; a strictly positive extraterrestrial
    irradiance is a precondition of this model and is not patched here
    (unlike the Perez model, which substitutes an epsilon).
    Hay & Davies (1980); Loutzenhiser et al. (2007).
*/
func HayDavies1980(srf Surface, dhi_ns, dni_ns, h_extra_ns, sun_zenith_ns, sun_azimuth_ns []float64) []float64 {
	// cosine of the angle of incidence at step n, -, [n]
	cos_tt_ns := _get_cos_tt_ns(srf, sun_zenith_ns, sun_azimuth_ns)

	// beam transposition ratio at step n, -, [n]
	rb_ns := _get_rb_ns(cos_tt_ns, sun_zenith_ns)

	// view factor of the tilted surface to the sky dome, -
	f_sky := (1.0 + _cosd(srf.SurfTilt)) / 2.0

	sky_diffuse_ns := make([]float64, len(dhi_ns))
	for i, dhi := range dhi_ns {
		// anisotropy index, -
		ai := dni_ns[i] / h_extra_ns[i]

		sky_diffuse_ns[i] = dhi * (ai*rb_ns[i] + (1.0-ai)*f_sky)
	}

	return sky_diffuse_ns
}
