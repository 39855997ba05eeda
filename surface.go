package pv_irradiance_calc

import (
	"github.com/go-playground/validator/v10"
)

// Tilted surface receiving solar radiation.
type Surface struct {
	// tilt angle of the surface measured from the horizontal plane
	// (facing up = 0, facing the horizon = 90, facing down = 180), deg
	SurfTilt float64 `validate:"gte=0,lte=180"`

	// azimuth angle of the surface in degrees east of north
	// (north = 0, east = 90, south = 180, west = 270), deg
	SurfAz float64 `validate:"gte=0,lte=360"`
}

var _validate = validator.New()

/*
Create a tilted surface from the tilt angle and the azimuth angle.

Args:
    surf_tilt: tilt angle of the surface, deg
    surf_az: azimuth angle of the surface, deg

Returns:
    Surface struct

Notes:
    The numeric domain of both angles is checked once here; the irradiance
    models assume a valid Surface and do not re-validate their arguments.
*/
func NewSurface(surf_tilt float64, surf_az float64) (Surface, error) {
	srf := Surface{SurfTilt: surf_tilt, SurfAz: surf_az}

	if err := _validate.Struct(srf); err != nil {
		return Surface{}, err
	}

	return srf, nil
}
