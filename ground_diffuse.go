package pv_irradiance_calc

/*
Estimate the irradiance on the tilted surface due to ground reflections.

The ground is modeled as a Lambertian reflector of the global horizontal
irradiance, seen by the surface through its view factor to the ground.

Args:
    srf: tilted surface
    ghi_ns: global horizontal irradiance at step n (>= 0), W/m2, [n]
    albedo: ground reflectance (0-1, typically 0.1-0.4 for land surfaces,
        higher over snow or ice), -

Returns:
    ground reflected irradiance on the tilted surface at step n, W/m2, [n]

Notes:
    The view factor (1 - cos(tilt)) / 2 is 0 for a surface facing straight
    up and reaches 1 at a tilt of 180 deg (facing straight down).
    Loutzenhiser et al. (2007), Solar Energy 81, pp. 254-267.
*/
func GroundDiffuse(srf Surface, ghi_ns []float64, albedo float64) []float64 {
	// view factor of the tilted surface to the ground, -
	f_gnd := (1.0 - _cosd(srf.SurfTilt)) / 2.0

	gr_ns := make([]float64, len(ghi_ns))
	for i, ghi := range ghi_ns {
		gr_ns[i] = ghi * albedo * f_gnd
	}

	return gr_ns
}
