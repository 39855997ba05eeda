package pv_irradiance_calc

/*
Determine the diffuse irradiance from the sky on a tilted surface using the
model developed by David L. King at Sandia National Laboratories.

Args:
    srf: tilted surface
    dhi_ns: diffuse horizontal irradiance at step n (>= 0), W/m2, [n]
    ghi_ns: global horizontal irradiance at step n (>= 0), W/m2, [n]
    sun_zenith_ns: apparent sun zenith angle at step n (0-180), deg, [n]

Returns:
    sky diffuse irradiance on the tilted surface at step n, W/m2, [n]

Notes:
    The model is empirical and has not been published.
    No clamping is applied: for small zenith angles the second term is
    negative (0.012 * zenith - 0.04 < 0) and the result can fall below zero.
*/
func KingDiffuse(srf Surface, dhi_ns, ghi_ns, sun_zenith_ns []float64) []float64 {
	cos_tilt := _cosd(srf.SurfTilt)

	sky_diffuse_ns := make([]float64, len(dhi_ns))
	for i, dhi := range dhi_ns {
		sky_diffuse_ns[i] = dhi*(1.0+cos_tilt)/2.0 +
			ghi_ns[i]*(0.012*sun_zenith_ns[i]-0.04)*(1.0-cos_tilt)/2.0
	}

	return sky_diffuse_ns
}
