package pv_irradiance_calc

import (
	"gonum.org/v1/gonum/mat"
)

/*
Combine the beam, the sky diffuse and the ground reflected components into
the total irradiance in the plane of the tilted surface.

Args:
    aoi_ns: angle of incidence of the solar rays with respect to the surface
        normal at step n (0-180), deg, [n]
    dni_ns: direct normal irradiance at step n (>= 0), W/m2, [n]
    sky_diffuse_ns: sky diffuse irradiance in the plane of the surface at
        step n, as produced by one of the sky diffuse models, W/m2, [n]
    gr_ns: ground reflected irradiance in the plane of the surface at step
        n, as produced by GroundDiffuse, W/m2, [n]

Returns:
    (1) total in-plane irradiance at step n, W/m2, [n]
    (2) in-plane beam irradiance at step n, W/m2, [n]
    (3) in-plane diffuse irradiance (sky + ground) at step n, W/m2, [n]

Notes:
    Which sky diffuse model feeds sky_diffuse_ns is entirely the caller's
    choice; no model selection happens here.
*/
func GlobalInPlane(aoi_ns, dni_ns, sky_diffuse_ns, gr_ns []float64) (e_ns, eb_ns, ediff_ns []float64) {
	// cosine of the angle of incidence at step n, -, [n]
	cos_aoi := mat.NewVecDense(len(aoi_ns), nil)
	for i, aoi := range aoi_ns {
		cos_aoi.SetVec(i, _cosd(aoi))
	}

	// in-plane beam irradiance, W/m2, [n]
	var eb mat.VecDense
	eb.MulElemVec(mat.NewVecDense(len(dni_ns), dni_ns), cos_aoi)

	// in-plane diffuse irradiance, W/m2, [n]
	var ediff mat.VecDense
	ediff.AddVec(
		mat.NewVecDense(len(sky_diffuse_ns), sky_diffuse_ns),
		mat.NewVecDense(len(gr_ns), gr_ns),
	)

	// total in-plane irradiance, W/m2, [n]
	var e mat.VecDense
	e.AddVec(&eb, &ediff)

	return e.RawVector().Data, eb.RawVector().Data, ediff.RawVector().Data
}
