package pv_irradiance_calc

import (
	"errors"
	"os"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerez_AllSitesComposite1990(t *testing.T) {
	srf := must_surface(t, 30.0, 180.0)

	sky_diffuse_ns, err := Perez(srf,
		[]float64{100.0},  // dhi
		[]float64{800.0},  // dni
		[]float64{1400.0}, // h_extra
		[]float64{30.0},   // sun zenith
		[]float64{180.0},  // sun azimuth
		[]float64{1.5},    // airmass
		DefaultPerezModel,
	)
	require.NoError(t, err)

	assert.InDelta(t, 111.64749825879672, sky_diffuse_ns[0], 1e-9)
}

func TestPerez_SecondCoefficientSet(t *testing.T) {
	srf := must_surface(t, 30.0, 180.0)

	sky_diffuse_ns, err := Perez(srf,
		[]float64{100.0},
		[]float64{800.0},
		[]float64{1400.0},
		[]float64{30.0},
		[]float64{180.0},
		[]float64{1.5},
		PerezModelSandiaComposite1988,
	)
	require.NoError(t, err)

	assert.InDelta(t, 99.9305111091978, sky_diffuse_ns[0], 1e-9)
}

func TestPerez_ZeroDHIExcluded(t *testing.T) {
	srf := must_surface(t, 30.0, 180.0)

	sky_diffuse_ns, err := Perez(srf,
		[]float64{0.0, 100.0},
		[]float64{800.0, 800.0},
		[]float64{1400.0, 1400.0},
		[]float64{30.0, 30.0},
		[]float64{180.0, 180.0},
		[]float64{1.5, 1.5},
		DefaultPerezModel,
	)
	require.NoError(t, err)

	// the step without diffuse irradiance gets no clearness bin and its
	// output stays zero; the neighbouring step is unaffected
	assert.Equal(t, 0.0, sky_diffuse_ns[0])
	assert.InDelta(t, 111.64749825879672, sky_diffuse_ns[1], 1e-9)
}

func TestPerez_ZeroHExtraPatched(t *testing.T) {
	srf := must_surface(t, 30.0, 180.0)

	// h_extra = 0 is replaced by a tiny epsilon: the brightness parameter
	// explodes, both weights clamp to 0 and the isotropic term remains
	sky_diffuse_ns, err := Perez(srf,
		[]float64{100.0},
		[]float64{800.0},
		[]float64{0.0},
		[]float64{30.0},
		[]float64{180.0},
		[]float64{1.5},
		DefaultPerezModel,
	)
	require.NoError(t, err)

	iso_ns := IsotropicSky(srf, []float64{100.0})
	assert.InDelta(t, iso_ns[0], sky_diffuse_ns[0], 1e-9)
}

func TestPerez_HistoricalAlias(t *testing.T) {
	srf := must_surface(t, 30.0, 180.0)

	dhi_ns := []float64{100.0}
	dni_ns := []float64{800.0}
	h_extra_ns := []float64{1400.0}
	sun_zenith_ns := []float64{30.0}
	sun_azimuth_ns := []float64{180.0}
	am_ns := []float64{1.5}

	aliased, err := Perez(srf, dhi_ns, dni_ns, h_extra_ns, sun_zenith_ns, sun_azimuth_ns, am_ns, PerezModel("1990"))
	require.NoError(t, err)

	canonical, err := Perez(srf, dhi_ns, dni_ns, h_extra_ns, sun_zenith_ns, sun_azimuth_ns, am_ns, PerezModelAllSitesComposite1990)
	require.NoError(t, err)

	assert.Equal(t, canonical, aliased)
}

func TestPerez_UnknownModel(t *testing.T) {
	srf := must_surface(t, 30.0, 180.0)

	_, err := Perez(srf,
		[]float64{100.0},
		[]float64{800.0},
		[]float64{1400.0},
		[]float64{30.0},
		[]float64{180.0},
		[]float64{1.5},
		PerezModel("not_a_model"),
	)

	var unknown *UnknownModelError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "not_a_model", unknown.Model)
}

func TestPerez_Pure(t *testing.T) {
	srf := must_surface(t, 45.0, 90.0)

	dhi_ns := []float64{150.0}
	dni_ns := []float64{400.0}
	h_extra_ns := []float64{1380.0}
	sun_zenith_ns := []float64{60.0}
	sun_azimuth_ns := []float64{220.0}
	am_ns := []float64{2.0}

	first, err := Perez(srf, dhi_ns, dni_ns, h_extra_ns, sun_zenith_ns, sun_azimuth_ns, am_ns, DefaultPerezModel)
	require.NoError(t, err)
	second, err := Perez(srf, dhi_ns, dni_ns, h_extra_ns, sun_zenith_ns, sun_azimuth_ns, am_ns, DefaultPerezModel)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

type perez_golden_row struct {
	SurfTilt   float64 `csv:"surf_tilt"`
	SurfAz     float64 `csv:"surf_az"`
	Dhi        float64 `csv:"dhi"`
	Dni        float64 `csv:"dni"`
	HExtra     float64 `csv:"h_extra"`
	SunZenith  float64 `csv:"sun_zenith"`
	SunAzimuth float64 `csv:"sun_azimuth"`
	AirMass    float64 `csv:"air_mass"`
	SkyDiffuse float64 `csv:"sky_diffuse"`
}

func TestPerez_GoldenTable(t *testing.T) {
	file, err := os.Open("testdata/perez_allsitescomposite1990.csv")
	require.NoError(t, err)
	defer file.Close()

	var rows []*perez_golden_row
	require.NoError(t, gocsv.UnmarshalFile(file, &rows))
	require.NotEmpty(t, rows)

	for i, row := range rows {
		srf := must_surface(t, row.SurfTilt, row.SurfAz)

		sky_diffuse_ns, err := Perez(srf,
			[]float64{row.Dhi},
			[]float64{row.Dni},
			[]float64{row.HExtra},
			[]float64{row.SunZenith},
			[]float64{row.SunAzimuth},
			[]float64{row.AirMass},
			DefaultPerezModel,
		)
		require.NoError(t, err, "row %d", i)

		assert.InDelta(t, row.SkyDiffuse, sky_diffuse_ns[0], 1e-6, "row %d", i)
	}
}

func TestPerez_ClearnessBins(t *testing.T) {
	// e below the first breakpoint is overcast, e above the last is clear
	assert.Equal(t, 0, _get_clearness_bin(1.0))
	assert.Equal(t, 1, _get_clearness_bin(1.065))
	assert.Equal(t, 1, _get_clearness_bin(1.2))
	assert.Equal(t, 4, _get_clearness_bin(2.0))
	assert.Equal(t, 6, _get_clearness_bin(5.0))
	assert.Equal(t, 7, _get_clearness_bin(6.2))
	assert.Equal(t, 7, _get_clearness_bin(100.0))
}

func TestErrors_Is_Errors_As_Compatibility(t *testing.T) {
	_, err := PerezModelFromString("not_a_model")
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*UnknownModelError)))

	model, err := PerezModelFromString("1990")
	require.NoError(t, err)
	assert.Equal(t, PerezModelAllSitesComposite1990, model)
}
