package pv_irradiance_calc

import "math"

// Constant of the sky clearness formula, valid for the zenith angle
// expressed in radians.
const _kappa = 1.041

// Breakpoints between the 8 sky clearness bins, from overcast (bin 0,
// e < 1.065) to clear (bin 7, e >= 6.2).
var _clearness_bin_edges = [7]float64{1.065, 1.23, 1.5, 1.95, 2.8, 4.5, 6.2}

// Index of the clearness bin the clearness index e falls into (0-7).
func _get_clearness_bin(e float64) int {
	bin := 0
	for bin < len(_clearness_bin_edges) && e >= _clearness_bin_edges[bin] {
		bin++
	}
	return bin
}

/*
Determine the diffuse irradiance from the sky on a tilted surface using one
of the Perez models.

The diffuse irradiance is split into an isotropic background, a circumsolar
part (weight F1) and a horizon brightening part (weight F2). F1 and F2 are
regressions over the sky clearness bin, the sky brightness parameter and
the zenith angle, with coefficients fitted per measurement campaign.

Args:
    srf: tilted surface
    dhi_ns: diffuse horizontal irradiance at step n (>= 0), W/m2, [n]
    dni_ns: direct normal irradiance at step n (>= 0), W/m2, [n]
    h_extra_ns: extraterrestrial normal irradiance at step n (>= 0), W/m2, [n]
    sun_zenith_ns: apparent sun zenith angle at step n (0-180), deg, [n]
    sun_azimuth_ns: sun azimuth angle at step n in degrees east of north, deg, [n]
    am_ns: relative (not pressure corrected) airmass at step n (>= 0), -, [n]
    model: coefficient fit name (use DefaultPerezModel when in doubt)

Returns:
    sky diffuse irradiance on the tilted surface at step n, W/m2, [n]
    UnknownModelError when model names none of the embedded fits

Notes:
    Steps with dhi <= 0 have an undefined sky clearness and are excluded
    from the computation; their output stays 0.
    A zero extraterrestrial irradiance is replaced by 1e-8 so the sky
    brightness parameter does not divide by zero. This is a numerical
    workaround, not a physically meaningful substitution.
    Perez et al. (1987), Solar Energy 39, pp. 221-232;
    Perez et al. (1990), Solar Energy 44, pp. 271-289.
*/
func Perez(srf Surface, dhi_ns, dni_ns, h_extra_ns, sun_zenith_ns, sun_azimuth_ns, am_ns []float64, model PerezModel) ([]float64, error) {
	f1c, f2c, err := GetPerezCoefficients(model)
	if err != nil {
		return nil, err
	}

	// cosine of the angle of incidence at step n, -, [n]
	cos_tt_ns := _get_cos_tt_ns(srf, sun_zenith_ns, sun_azimuth_ns)

	cos_tilt := _cosd(srf.SurfTilt)
	sin_tilt := _sind(srf.SurfTilt)

	// lower limit of the zenith cosine, cos(85 deg); floors the near
	// horizon zenith cosine in the circumsolar denominator
	cos_zen_min := _cosd(85.0)

	sky_diffuse_ns := make([]float64, len(dhi_ns))
	for i, dhi := range dhi_ns {
		if dhi <= 0 {
			// no diffuse horizontal irradiance: the sky clearness is
			// undefined and the step contributes nothing
			continue
		}

		// sun zenith angle, rad
		z := sun_zenith_ns[i] * math.Pi / 180.0
		kz3 := _kappa * z * z * z

		// sky clearness index, -
		e := ((dhi+dni_ns[i])/dhi + kz3) / (1.0 + kz3)

		bin := _get_clearness_bin(e)

		h_extra := h_extra_ns[i]
		if h_extra == 0 {
			h_extra = 1e-8
		}

		// sky brightness parameter, -
		delta := dhi * am_ns[i] / h_extra

		// circumsolar and horizon brightening weights, floored at 0, -
		f1 := math.Max(0.0, f1c.At(bin, 0)+f1c.At(bin, 1)*delta+f1c.At(bin, 2)*z)
		f2 := math.Max(0.0, f2c.At(bin, 0)+f2c.At(bin, 1)*delta+f2c.At(bin, 2)*z)

		// solid angle factors of the circumsolar region seen by the
		// tilted surface (a) and by the horizontal plane (b), -
		a := math.Max(0.0, cos_tt_ns[i])
		b := math.Max(_cosd(sun_zenith_ns[i]), cos_zen_min)

		sky_diffuse := dhi * (0.5*(1.0-f1)*(1.0+cos_tilt) + f1*a/b + f2*sin_tilt)

		sky_diffuse_ns[i] = math.Max(sky_diffuse, 0.0)
	}

	return sky_diffuse_ns, nil
}
