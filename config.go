package spectrolib

const (
	MIN_RADIOMETRIC_RESOLUTION     = 1
	MAX_RADIOMETRIC_RESOLUTION     = 64
	DEFAULT_RADIOMETRIC_RESOLUTION = 16

	GTIFF_DRIVER_NAME = "GTiff"
	FILE_EXT_TIF      = ".tif"

	TMP_TIF = "ras_%s" + FILE_EXT_TIF

	SPECTRAL_EXTENSION = "spectral"

	// 纳米、微米换算（目录中波长一律以米为单位）
	Nanometer  = 1e-9
	Micrometer = 1e-6
	Millimeter = 1e-3
)
