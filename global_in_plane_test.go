package pv_irradiance_calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalInPlane_NormalIncidence(t *testing.T) {
	e_ns, eb_ns, ediff_ns := GlobalInPlane(
		[]float64{0.0},   // aoi
		[]float64{800.0}, // dni
		[]float64{90.0},  // sky diffuse
		[]float64{20.0},  // ground reflected
	)

	// at normal incidence the whole direct normal irradiance is beam
	assert.InDelta(t, 800.0, eb_ns[0], 1e-12)
	assert.InDelta(t, 110.0, ediff_ns[0], 1e-12)
	assert.InDelta(t, 910.0, e_ns[0], 1e-12)
}

func TestGlobalInPlane_ComponentsSum(t *testing.T) {
	aoi_ns := []float64{0.0, 35.0, 60.0, 89.0}
	dni_ns := []float64{800.0, 750.0, 400.0, 50.0}
	sky_diffuse_ns := []float64{90.0, 100.0, 120.0, 60.0}
	gr_ns := []float64{20.0, 18.0, 12.0, 5.0}

	e_ns, eb_ns, ediff_ns := GlobalInPlane(aoi_ns, dni_ns, sky_diffuse_ns, gr_ns)
	require.Len(t, e_ns, 4)

	for i := range e_ns {
		assert.Equal(t, eb_ns[i]+ediff_ns[i], e_ns[i], "step %d", i)
		assert.Equal(t, sky_diffuse_ns[i]+gr_ns[i], ediff_ns[i], "step %d", i)
		assert.InDelta(t, dni_ns[i]*_cosd(aoi_ns[i]), eb_ns[i], 1e-12, "step %d", i)
	}
}

func TestGlobalInPlane_ChainedFromModels(t *testing.T) {
	srf := must_surface(t, 30.0, 180.0)

	dhi_ns := []float64{100.0}
	ghi_ns := []float64{700.0}

	sky_diffuse_ns := IsotropicSky(srf, dhi_ns)
	gr_ns := GroundDiffuse(srf, ghi_ns, 0.2)

	e_ns, eb_ns, ediff_ns := GlobalInPlane([]float64{25.0}, []float64{800.0}, sky_diffuse_ns, gr_ns)

	assert.InDelta(t, 800.0*_cosd(25.0), eb_ns[0], 1e-9)
	assert.InDelta(t, sky_diffuse_ns[0]+gr_ns[0], ediff_ns[0], 1e-12)
	assert.InDelta(t, eb_ns[0]+ediff_ns[0], e_ns[0], 1e-12)
}
