package spectrolib

import "math"

const (
	degToRad = math.Pi / 180

	xr = 20037508.34 / 180
	yr = xr / degToRad
	tr = degToRad / 2
)

// 栅格行列号与模型空间坐标间的双向映射，由外部坐标变换实现
type RasterMapper interface {
	MapCoordinate(rowIndex, columnIndex int) Coordinate
	MapRaster(coord Coordinate) (rowIndex, columnIndex int)
}

// 恒等映射：行列号直接作为模型坐标（row→Y, col→X）
type GridMapper struct{}

func (GridMapper) MapCoordinate(rowIndex, columnIndex int) Coordinate {
	return Coordinate{X: float64(columnIndex), Y: float64(rowIndex)}
}

func (GridMapper) MapRaster(coord Coordinate) (rowIndex, columnIndex int) {
	return int(math.Round(coord.Y)), int(math.Round(coord.X))
}

// 仿射映射，采用GDAL六参数geotransform次序：
// [originX, pixelWidth, rowRotation, originY, colRotation, pixelHeight]
type AffineMapper struct {
	gt [6]float64
}

func NewAffineMapper(gt [6]float64) AffineMapper {
	return AffineMapper{gt: gt}
}

// 简单映射：像元左上角原点加行列步长（无旋转项）
func NewScaledMapper(originX, originY, pixelWidth, pixelHeight float64) AffineMapper {
	return AffineMapper{gt: [6]float64{originX, pixelWidth, 0, originY, 0, pixelHeight}}
}

func (m AffineMapper) GeoTransform() [6]float64 {
	return m.gt
}

func (m AffineMapper) MapCoordinate(rowIndex, columnIndex int) Coordinate {
	c := float64(columnIndex)
	r := float64(rowIndex)
	return Coordinate{
		X: m.gt[0] + c*m.gt[1] + r*m.gt[2],
		Y: m.gt[3] + c*m.gt[4] + r*m.gt[5],
	}
}

func (m AffineMapper) MapRaster(coord Coordinate) (rowIndex, columnIndex int) {
	dx := coord.X - m.gt[0]
	dy := coord.Y - m.gt[3]
	det := m.gt[1]*m.gt[5] - m.gt[2]*m.gt[4]
	if det == 0 {
		return
	}
	columnIndex = int(math.Floor((dx*m.gt[5] - dy*m.gt[2]) / det))
	rowIndex = int(math.Floor((dy*m.gt[1] - dx*m.gt[4]) / det))
	return
}

// 经纬度(4326)栅格到web墨卡托(3857)模型坐标的映射
type WebMercatorMapper struct {
	inner AffineMapper
}

func NewWebMercatorMapper(originLon, originLat, lonStep, latStep float64) WebMercatorMapper {
	return WebMercatorMapper{inner: NewScaledMapper(originLon, originLat, lonStep, latStep)}
}

func (m WebMercatorMapper) MapCoordinate(rowIndex, columnIndex int) Coordinate {
	ll := m.inner.MapCoordinate(rowIndex, columnIndex)
	x, y := Convert4326To3857(ll.X, ll.Y)
	return Coordinate{X: x, Y: y}
}

func (m WebMercatorMapper) MapRaster(coord Coordinate) (rowIndex, columnIndex int) {
	lon, lat := Convert3857To4326(coord.X, coord.Y)
	return m.inner.MapRaster(Coordinate{X: lon, Y: lat})
}

func Convert4326To3857(lon, lat float64) (lonIn3857, latIn3857 float64) {
	lonIn3857 = lon * xr
	latIn3857 = math.Log(math.Tan((90+lat)*tr)) * yr
	return
}

func Convert3857To4326(lonIn3857, latIn3857 float64) (lon, lat float64) {
	lon = lonIn3857 / xr
	lat = math.Atan(math.Pow(math.E, latIn3857/yr))/tr - 90
	return
}
