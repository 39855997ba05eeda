package pv_irradiance_calc

/*
Determine the diffuse irradiance from the sky on a tilted surface using the
isotropic sky model (Hottel & Woertz 1942).

The sky is treated as a uniform hemispherical source of diffuse irradiance,
so the sky diffuse irradiance on the surface is the diffuse horizontal
irradiance reduced by the view factor of the surface to the sky dome.

Args:
    srf: tilted surface
    dhi_ns: diffuse horizontal irradiance at step n (>= 0), W/m2, [n]

Returns:
    sky diffuse irradiance on the tilted surface at step n, W/m2, [n]

Notes:
    The result excludes the beam and the ground reflected components.
    Loutzenhiser et al. (2007), equation 3.
*/
func IsotropicSky(srf Surface, dhi_ns []float64) []float64 {
	// view factor of the tilted surface to the sky dome, -
	f_sky := (1.0 + _cosd(srf.SurfTilt)) / 2.0

	sky_diffuse_ns := make([]float64, len(dhi_ns))
	for i, dhi := range dhi_ns {
		sky_diffuse_ns[i] = dhi * f_sky
	}

	return sky_diffuse_ns
}
