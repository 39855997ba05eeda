package pv_irradiance_calc

import "math"

/*
Determine the diffuse irradiance from the sky on a tilted surface using
Klucher's 1979 model.

Args:
    srf: tilted surface
    dhi_ns: diffuse horizontal irradiance at step n (>= 0), W/m2, [n]
    ghi_ns: global horizontal irradiance at step n (>= 0), W/m2, [n]
    sun_zenith_ns: apparent sun zenith angle at step n (0-180), deg, [n]
    sun_azimuth_ns: sun azimuth angle at step n in degrees east of north, deg, [n]

Returns:
    sky diffuse irradiance on the tilted surface at step n, W/m2, [n]

Notes:
    The three factors of the model are the isotropic view factor term, a
    horizon brightening correction and a circumsolar brightening correction.
    The modulating factor F = 1 - (DHI/GHI)^2 goes to 0 under a fully
    overcast sky (GHI = DHI) and towards 1 under a clear sky (DHI << GHI).
    GHI is floored element-wise at DHI and at 1e-6 on a local copy; the
    caller's series is left untouched.
    Klucher (1979), Solar Energy 23, pp. 111-114;
    Loutzenhiser et al. (2007), equation 4.
*/
func Klucher1979(srf Surface, dhi_ns, ghi_ns, sun_zenith_ns, sun_azimuth_ns []float64) []float64 {
	// cosine of the angle of incidence at step n, -, [n]
	cos_tt_ns := _get_cos_tt_ns(srf, sun_zenith_ns, sun_azimuth_ns)

	// view factor of the tilted surface to the sky dome, -
	f_sky := (1.0 + _cosd(srf.SurfTilt)) / 2.0

	// sin^3 of the half tilt angle, -
	sin3_half_tilt := math.Pow(_sind(srf.SurfTilt/2.0), 3.0)

	sky_diffuse_ns := make([]float64, len(dhi_ns))
	for i, dhi := range dhi_ns {
		// GHI below DHI is physically impossible; the floor at 1e-6 also
		// guards the division in the modulating factor.
		ghi := math.Max(ghi_ns[i], dhi)
		ghi = math.Max(ghi, 1e-6)

		// modulating factor, -
		f := 1.0 - (dhi/ghi)*(dhi/ghi)

		// sin^3 of the sun zenith angle, -
		sin3_zen := math.Pow(_sind(sun_zenith_ns[i]), 3.0)

		sky_diffuse_ns[i] = dhi * f_sky *
			(1.0 + f*sin3_half_tilt) *
			(1.0 + f*cos_tt_ns[i]*cos_tt_ns[i]*sin3_zen)
	}

	return sky_diffuse_ns
}
