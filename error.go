package spectrolib

import "errors"

var (
	ErrNullArgument                 = errors.New("spectral null argument")
	ErrInvalidDimension             = errors.New("spectral invalid dimension")
	ErrInvalidBandCount             = errors.New("spectral invalid band count")
	ErrInvalidRadiometricResolution = errors.New("spectral invalid radiometric resolution")
	ErrBandResolutionMismatch       = errors.New("spectral band resolution mismatch")
	ErrEmptyShell                   = errors.New("spectral shell is empty")
	ErrDuplicateBandIndex           = errors.New("spectral duplicate band index")
	ErrIncompatiblePresentation     = errors.New("spectral incompatible presentation config")
	ErrNullColorMap                 = errors.New("spectral color map is void")
	ErrEmptyOthersCollection        = errors.New("spectral others collection is empty")
	ErrUnknownSpectralRange         = errors.New("spectral unknown range name")

	ErrInvalidTif       = errors.New("invalid tif")
	ErrWrongTif         = errors.New("wrong tif")
	ErrTifReadFailed    = errors.New("tif read failed")
	ErrGdalDriverCreate = errors.New("gdal driver create err")
)
