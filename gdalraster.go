package spectrolib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wgdzlh/spectrolib/log"

	"github.com/google/uuid"
	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// GeoTIFF与内存栅格间的桥接，像元编解码与坐标系细节都留在GDAL内部
type GdalRasterBridge struct {
	factory *MemoryRasterFactory
	logTag  string
}

func NewGdalRasterBridge() *GdalRasterBridge {
	return &GdalRasterBridge{
		factory: NewMemoryRasterFactory(),
		logTag:  "GdalRasterBridge:",
	}
}

// 读取GeoTIFF为内存栅格，映射取自数据集geotransform
func (g *GdalRasterBridge) OpenGeoTIFF(tif string) (raster Raster, mapper AffineMapper, err error) {
	sds, err := gdal.Open(tif, gdal.ReadOnly)
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	bands := sds.RasterCount()
	if bands < 1 {
		log.Error(g.logTag+"tif has no bands", zap.String("tif", tif))
		err = ErrWrongTif
		return
	}
	cols := sds.RasterXSize()
	rows := sds.RasterYSize()
	mapper = NewAffineMapper(sds.GeoTransform())
	resolutions := make([]int, bands)
	for i := 0; i < bands; i++ {
		dt := sds.RasterBand(i + 1).RasterDataType()
		switch dt {
		case gdal.Byte:
			resolutions[i] = 8
		case gdal.UInt16, gdal.Int16:
			resolutions[i] = 16
		case gdal.UInt32, gdal.Int32:
			resolutions[i] = 32
		default:
			log.Error(g.logTag+"unsupported band data type", zap.Int("band", i), zap.Int("dt", int(dt)))
			err = ErrWrongTif
			return
		}
	}
	spec, err := NewBandedRasterSpecification(bands, rows, cols, resolutions)
	if err != nil {
		return
	}
	raster, err = g.factory.CreateRaster(spec, mapper)
	if err != nil {
		return
	}
	log.Info(g.logTag+"start read tif", zap.String("tif", tif), zap.Int("bands", bands),
		zap.Int("rows", rows), zap.Int("columns", cols))
	for i := 0; i < bands; i++ {
		band := sds.RasterBand(i + 1)
		switch resolutions[i] {
		case 8:
			buf := make([]uint8, rows*cols)
			if err = band.IO(gdal.Read, 0, 0, cols, rows, buf, cols, rows, 0, 0); err != nil {
				break
			}
			for j, v := range buf {
				raster.SetValue(j/cols, j%cols, i, uint64(v))
			}
		case 16:
			buf := make([]uint16, rows*cols)
			if err = band.IO(gdal.Read, 0, 0, cols, rows, buf, cols, rows, 0, 0); err != nil {
				break
			}
			for j, v := range buf {
				raster.SetValue(j/cols, j%cols, i, uint64(v))
			}
		default:
			buf := make([]uint32, rows*cols)
			if err = band.IO(gdal.Read, 0, 0, cols, rows, buf, cols, rows, 0, 0); err != nil {
				break
			}
			for j, v := range buf {
				raster.SetValue(j/cols, j%cols, i, uint64(v))
			}
		}
		if err != nil {
			log.Error(g.logTag+"read tif band failed", zap.Int("band", i), zap.Error(err))
			err = ErrTifReadFailed
			return
		}
	}
	return
}

// 将光谱面的栅格写出为GeoTIFF；先写uuid临时文件再改名，避免半成品落盘
func (g *GdalRasterBridge) ExportGeoTIFF(out string, sp *SpectralPolygon) (err error) {
	if sp == nil || sp.Raster() == nil {
		err = fmt.Errorf("%w: spectral polygon", ErrNullArgument)
		return
	}
	raster := sp.Raster()
	rows, cols, bands := raster.Rows(), raster.Columns(), raster.BandCount()
	maxBits := 0
	for _, r := range raster.RadiometricResolutions() {
		if r > maxBits {
			maxBits = r
		}
	}
	dt := gdal.Byte
	if maxBits > 16 {
		dt = gdal.UInt32
	} else if maxBits > 8 {
		dt = gdal.UInt16
	}
	if maxBits > 32 {
		log.Warn(g.logTag+"samples wider than 32 bits are truncated on export", zap.Int("bits", maxBits))
	}
	driver, err := gdal.GetDriverByName(GTIFF_DRIVER_NAME)
	if err != nil {
		log.Error(g.logTag+"get gtiff driver failed", zap.Error(err))
		err = ErrGdalDriverCreate
		return
	}
	tmp := filepath.Join(filepath.Dir(out), fmt.Sprintf(TMP_TIF, uuid.NewString()))
	defer os.Remove(tmp)
	ods := driver.Create(tmp, cols, rows, bands, dt, []string{"COMPRESS=LZW"})
	if am, ok := raster.Mapper().(AffineMapper); ok {
		ods.SetGeoTransform(am.GeoTransform())
	}
	log.Info(g.logTag+"start write tif", zap.String("out", out), zap.Int("bands", bands),
		zap.Int("rows", rows), zap.Int("columns", cols), zap.Int("dt", int(dt)))
	for i := 0; i < bands; i++ {
		band := ods.RasterBand(i + 1)
		switch dt {
		case gdal.Byte:
			buf := make([]uint8, rows*cols)
			for j := range buf {
				buf[j] = uint8(raster.Value(j/cols, j%cols, i))
			}
			err = band.IO(gdal.Write, 0, 0, cols, rows, buf, cols, rows, 0, 0)
		case gdal.UInt16:
			buf := make([]uint16, rows*cols)
			for j := range buf {
				buf[j] = uint16(raster.Value(j/cols, j%cols, i))
			}
			err = band.IO(gdal.Write, 0, 0, cols, rows, buf, cols, rows, 0, 0)
		default:
			buf := make([]uint32, rows*cols)
			for j := range buf {
				buf[j] = uint32(raster.Value(j/cols, j%cols, i))
			}
			err = band.IO(gdal.Write, 0, 0, cols, rows, buf, cols, rows, 0, 0)
		}
		if err != nil {
			log.Error(g.logTag+"write tif band failed", zap.Int("band", i), zap.Error(err))
			ods.Close()
			return
		}
	}
	ods.Close()
	if err = os.Rename(tmp, out); err != nil {
		log.Error(g.logTag+"rename tif failed", zap.String("out", out), zap.Error(err))
		return
	}
	log.Info(g.logTag+"tif exported", zap.String("out", out))
	return
}
