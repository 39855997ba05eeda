package pv_irradiance_calc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Named Perez coefficient fit.
type PerezModel string

// Coefficient fits published for the Perez model. AllSitesComposite1990 is
// the recommended composite fit; the site specific 1988 fits are retained
// for reproducing site specific validation studies.
const (
	PerezModelAllSitesComposite1990 PerezModel = "allsitescomposite1990"
	PerezModelAllSitesComposite1988 PerezModel = "allsitescomposite1988"
	PerezModelSandiaComposite1988   PerezModel = "sandiacomposite1988"
	PerezModelUSAComposite1988      PerezModel = "usacomposite1988"
	PerezModelFrance1988            PerezModel = "france1988"
	PerezModelPhoenix1988           PerezModel = "phoenix1988"
	PerezModelElMonte1988           PerezModel = "elmonte1988"
	PerezModelOsage1988             PerezModel = "osage1988"
	PerezModelAlbuquerque1988       PerezModel = "albuquerque1988"
	PerezModelCapeCanaveral1988     PerezModel = "capecanaveral1988"
	PerezModelAlbany1988            PerezModel = "albany1988"
)

// Fit used when the caller expresses no preference.
const DefaultPerezModel = PerezModelAllSitesComposite1990

// UnknownModelError reports a Perez model name that matches none of the
// embedded coefficient fits.
type UnknownModelError struct {
	Model string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown perez coefficient model: %q", e.Model)
}

/*
Resolve a model name string to a PerezModel.

Args:
    str: model name

Returns:
    PerezModel constant

Notes:
    The historical name "1990" is accepted as an alias of
    "allsitescomposite1990". Any other unlisted name yields an
    UnknownModelError.
*/
func PerezModelFromString(str string) (PerezModel, error) {
	if str == "1990" {
		return PerezModelAllSitesComposite1990, nil
	}

	m := PerezModel(str)
	if _, ok := _perez_coeffs[m]; !ok {
		return "", &UnknownModelError{Model: str}
	}

	return m, nil
}

// Regression coefficients of the Perez model: for each fit, 8 sky clearness
// bins x 6 coefficients (f11, f12, f13, f21, f22, f23). Columns 0-2 build
// the circumsolar coefficient F1, columns 3-5 the horizon brightening
// coefficient F2. Perez et al. (1988) SAND88-7030; Perez et al. (1990),
// Solar Energy 44, pp. 271-289.
var _perez_coeffs = map[PerezModel]*mat.Dense{
	PerezModelAllSitesComposite1990: mat.NewDense(8, 6, []float64{
		-0.0080, 0.5880, -0.0620, -0.0600, 0.0720, -0.0220,
		0.1300, 0.6830, -0.1510, -0.0190, 0.0660, -0.0290,
		0.3300, 0.4870, -0.2210, 0.0550, -0.0640, -0.0260,
		0.5680, 0.1870, -0.2950, 0.1090, -0.1520, -0.0140,
		0.8730, -0.3920, -0.3620, 0.2260, -0.4620, 0.0010,
		1.1320, -1.2370, -0.4120, 0.2880, -0.8230, 0.0560,
		1.0600, -1.6000, -0.3590, 0.2640, -1.1270, 0.1310,
		0.6780, -0.3270, -0.2500, 0.1560, -1.3770, 0.2510,
	}),
	PerezModelAllSitesComposite1988: mat.NewDense(8, 6, []float64{
		-0.0180, 0.7050, -0.0710, -0.0580, 0.1020, -0.0260,
		0.1910, 0.6450, -0.1710, 0.0120, 0.0090, -0.0270,
		0.4400, 0.3780, -0.2560, 0.0870, -0.1040, -0.0250,
		0.7560, -0.1210, -0.3460, 0.1790, -0.3210, -0.0080,
		0.9960, -0.6450, -0.4050, 0.2600, -0.5900, 0.0170,
		1.0980, -1.2900, -0.3930, 0.2690, -0.8320, 0.0750,
		0.9730, -1.1350, -0.3780, 0.1240, -0.2580, 0.1490,
		0.6890, -0.4120, -0.2730, 0.1990, -1.6750, 0.2370,
	}),
	PerezModelSandiaComposite1988: mat.NewDense(8, 6, []float64{
		-0.1960, 1.0840, -0.0060, -0.1140, 0.1800, -0.0190,
		0.2360, 0.5190, -0.1800, -0.0110, 0.0200, -0.0380,
		0.4540, 0.3210, -0.2550, 0.0720, -0.0980, -0.0460,
		0.8660, -0.3810, -0.3750, 0.2030, -0.4030, -0.0490,
		1.0260, -0.7110, -0.4260, 0.2730, -0.6020, -0.0610,
		0.9780, -0.9860, -0.3500, 0.2800, -0.9150, -0.0240,
		0.7480, -0.9130, -0.2360, 0.1730, -1.0450, 0.0650,
		0.3180, -0.7570, 0.1030, 0.0620, -1.6980, 0.2360,
	}),
	PerezModelUSAComposite1988: mat.NewDense(8, 6, []float64{
		-0.0340, 0.6710, -0.0590, -0.0590, 0.0860, -0.0280,
		0.2550, 0.4740, -0.1910, 0.0180, -0.0140, -0.0330,
		0.4270, 0.3490, -0.2450, 0.0930, -0.1210, -0.0390,
		0.7560, -0.2130, -0.3280, 0.1750, -0.3040, -0.0270,
		1.0200, -0.8570, -0.3850, 0.2800, -0.6380, -0.0190,
		1.0500, -1.3440, -0.3480, 0.2800, -0.8930, 0.0370,
		0.9740, -1.5070, -0.3700, 0.1540, -0.5680, 0.1090,
		0.7440, -1.8170, -0.2560, 0.2460, -2.6180, 0.2300,
	}),
	PerezModelFrance1988: mat.NewDense(8, 6, []float64{
		0.0130, 0.7640, -0.1000, -0.0580, 0.1270, -0.0230,
		0.0950, 0.9200, -0.1520, 0.0000, 0.0510, -0.0200,
		0.4640, 0.4210, -0.2800, 0.0640, -0.0510, -0.0020,
		0.7590, -0.0090, -0.3730, 0.2010, -0.3820, 0.0100,
		0.9760, -0.4000, -0.4360, 0.2710, -0.6380, 0.0510,
		1.1760, -1.2540, -0.4620, 0.2950, -0.9750, 0.1290,
		1.1060, -1.5630, -0.3980, 0.3010, -1.4420, 0.2120,
		0.9340, -1.5010, -0.2710, 0.4200, -2.9170, 0.2490,
	}),
	PerezModelPhoenix1988: mat.NewDense(8, 6, []float64{
		-0.0030, 0.7280, -0.0970, -0.0750, 0.1420, -0.0430,
		0.2790, 0.3540, -0.1760, 0.0300, -0.0550, -0.0540,
		0.4690, 0.1680, -0.2460, 0.0480, -0.0420, -0.0570,
		0.8560, -0.5190, -0.3400, 0.1760, -0.3800, -0.0310,
		0.9410, -0.6250, -0.3910, 0.1880, -0.3600, -0.0490,
		1.0560, -1.1340, -0.4100, 0.2810, -0.7940, -0.0650,
		0.9010, -2.1390, -0.2690, 0.1180, -0.6650, 0.0460,
		0.1070, 0.4810, 0.1430, -0.1110, -0.1370, 0.2340,
	}),
	PerezModelElMonte1988: mat.NewDense(8, 6, []float64{
		0.0270, 0.7010, -0.1190, -0.0580, 0.1070, -0.0600,
		0.1810, 0.6710, -0.1780, -0.0790, 0.1940, -0.0350,
		0.4760, 0.4070, -0.2880, 0.0540, -0.0320, -0.0550,
		0.8750, -0.2180, -0.4030, 0.1870, -0.3090, -0.0610,
		1.1660, -1.0140, -0.4540, 0.2110, -0.4100, -0.0440,
		1.1430, -2.0640, -0.2910, 0.0970, -0.3190, 0.0530,
		1.0940, -2.6320, -0.2590, 0.0290, -0.4220, 0.1470,
		0.1550, 1.7230, 0.1630, -0.1310, -0.0190, 0.2770,
	}),
	PerezModelOsage1988: mat.NewDense(8, 6, []float64{
		-0.3530, 1.4740, 0.0570, -0.1750, 0.3120, 0.0090,
		0.3630, 0.2180, -0.2120, 0.0190, -0.0340, -0.0590,
		-0.0310, 1.2620, -0.0840, -0.0820, 0.2310, -0.0170,
		0.6910, 0.0390, -0.2950, 0.0910, -0.1310, -0.0350,
		1.1820, -1.3500, -0.3210, 0.4080, -0.9850, -0.0880,
		0.7640, 0.0190, -0.2030, 0.2170, -0.2940, -0.1030,
		0.2190, 1.4120, 0.2440, 0.4710, -2.9880, 0.0340,
		3.5780, 22.2310, -10.7450, 2.4260, 4.8920, -5.6870,
	}),
	PerezModelAlbuquerque1988: mat.NewDense(8, 6, []float64{
		0.0340, 0.5010, -0.0940, -0.0630, 0.1060, -0.0440,
		0.2290, 0.4670, -0.1560, -0.0050, -0.0190, -0.0230,
		0.4860, 0.2410, -0.2530, 0.0530, -0.0640, -0.0220,
		0.8740, -0.3930, -0.3970, 0.1810, -0.3270, -0.0370,
		1.1930, -1.2960, -0.5010, 0.2810, -0.6560, -0.0450,
		1.0560, -1.7580, -0.3740, 0.2260, -0.7590, 0.0340,
		0.9010, -4.7830, -0.1090, 0.0630, -0.9700, 0.1960,
		0.8510, -7.0550, -0.0530, 0.0600, -2.8330, 0.3300,
	}),
	PerezModelCapeCanaveral1988: mat.NewDense(8, 6, []float64{
		0.0750, 0.5330, -0.1240, -0.0670, 0.0420, -0.0200,
		0.2950, 0.4970, -0.2180, -0.0080, 0.0030, -0.0290,
		0.5140, 0.0810, -0.2610, 0.0750, -0.1600, -0.0290,
		0.7470, -0.3290, -0.3250, 0.1810, -0.4160, -0.0300,
		0.9010, -0.8830, -0.2970, 0.1780, -0.4890, 0.0080,
		0.5910, -0.0440, -0.1160, 0.2350, -0.9990, 0.0980,
		0.5370, -2.4020, 0.3200, 0.1690, -1.9710, 0.3100,
		-0.8050, 4.5460, 1.0720, -0.2580, -0.9500, 0.7530,
	}),
	PerezModelAlbany1988: mat.NewDense(8, 6, []float64{
		0.0120, 0.5540, -0.0760, -0.0520, 0.0840, -0.0290,
		0.2670, 0.4370, -0.1940, 0.0160, 0.0220, -0.0360,
		0.4200, 0.3360, -0.2370, 0.0740, -0.0520, -0.0320,
		0.6380, -0.0010, -0.2810, 0.1380, -0.1890, -0.0120,
		1.0190, -1.0270, -0.3420, 0.2710, -0.6280, 0.0140,
		1.1490, -1.9400, -0.3310, 0.3220, -1.0970, 0.0800,
		1.4340, -3.9940, -0.4920, 0.4530, -2.3760, 0.1170,
		1.0070, -2.2920, -0.4820, 0.3900, -3.3680, 0.2290,
	}),
}

/*
Find the coefficients for the Perez model.

Args:
    model: coefficient fit name

Returns:
    (1) F1 (circumsolar) coefficients, 8 clearness bins x 3, -
    (2) F2 (horizon brightening) coefficients, 8 clearness bins x 3, -

Notes:
    The returned matrices are views into the embedded constant tables and
    must not be written to.
*/
func GetPerezCoefficients(model PerezModel) (*mat.Dense, *mat.Dense, error) {
	if model == "1990" {
		model = PerezModelAllSitesComposite1990
	}

	coeffs, ok := _perez_coeffs[model]
	if !ok {
		return nil, nil, &UnknownModelError{Model: string(model)}
	}

	f1c := coeffs.Slice(0, 8, 0, 3).(*mat.Dense)
	f2c := coeffs.Slice(0, 8, 3, 6).(*mat.Dense)

	return f1c, f2c, nil
}
