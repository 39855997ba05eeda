package pv_irradiance_calc

import "math"

/*
Determine the extraterrestrial radiation from the day of the year.

Args:
    doy_ns: day of the year at step n (January 1st = 1, domain 1-366), d, [n]

Returns:
    extraterrestrial radiation at step n on a surface normal to the sun, W/m2, [n]

Notes:
    The orbital correction factor is a truncated Fourier series of the day
    angle B = 2*pi*doy/365 (Partridge & Platt 1976; Duffie & Beckman 1991,
    Eqs. SR1 and SR2).
*/
func ExtraRadiation(doy_ns []int) []float64 {
	// solar constant, W/m2
	const e_sc = 1367.0

	ea_ns := make([]float64, len(doy_ns))
	for i, doy := range doy_ns {
		// day angle, rad
		b := 2.0 * math.Pi * float64(doy) / 365.0

		// correction factor for the eccentricity of the earth orbit, -
		r_fact := 1.00011 +
			0.034221*math.Cos(b) +
			0.00128*math.Sin(b) +
			0.000719*math.Cos(2.0*b) +
			0.000077*math.Sin(2.0*b)

		ea_ns[i] = e_sc * r_fact
	}

	return ea_ns
}
