package spectrolib

import (
	"fmt"
)

// 多波段栅格，由创建它的光谱几何独占持有
type Raster interface {
	BandCount() int
	Rows() int
	Columns() int
	// 各波段的辐射分辨率（每样本比特数），长度等于BandCount
	RadiometricResolutions() []int
	Mapper() RasterMapper
	Value(rowIndex, columnIndex, bandIndex int) uint64
	SetValue(rowIndex, columnIndex, bandIndex int, value uint64)
}

// 栅格实现方（像元存储、编解码在外部）
type RasterFactory interface {
	CreateRaster(spec RasterSpecification, mapper RasterMapper) (Raster, error)
	// 深拷贝
	CloneRaster(source Raster) (Raster, error)
	// 按序拼接各源栅格的波段，产出新栅格
	MergeRasters(sources []Raster) (Raster, error)
}

// 栅格形制：波段数、行列数、各波段辐射分辨率，先于栅格实体校验
type RasterSpecification struct {
	bandCount   int
	rows        int
	columns     int
	resolutions []int
}

// 所有波段共用一个辐射分辨率
func NewRasterSpecification(bandCount, rows, columns, resolution int) (spec RasterSpecification, err error) {
	resolutions := make([]int, 0, bandCount)
	for i := 0; i < bandCount; i++ {
		resolutions = append(resolutions, resolution)
	}
	return NewBandedRasterSpecification(bandCount, rows, columns, resolutions)
}

// 各波段独立辐射分辨率，列表长度须等于波段数
func NewBandedRasterSpecification(bandCount, rows, columns int, resolutions []int) (spec RasterSpecification, err error) {
	if bandCount < 1 {
		err = fmt.Errorf("%w: bandCount %d", ErrInvalidBandCount, bandCount)
		return
	}
	if rows < 0 {
		err = fmt.Errorf("%w: rows %d", ErrInvalidDimension, rows)
		return
	}
	if columns < 0 {
		err = fmt.Errorf("%w: columns %d", ErrInvalidDimension, columns)
		return
	}
	if len(resolutions) != bandCount {
		err = fmt.Errorf("%w: expected %d, actual %d", ErrBandResolutionMismatch, bandCount, len(resolutions))
		return
	}
	for _, r := range resolutions {
		if r < MIN_RADIOMETRIC_RESOLUTION || r > MAX_RADIOMETRIC_RESOLUTION {
			err = fmt.Errorf("%w: %d", ErrInvalidRadiometricResolution, r)
			return
		}
	}
	spec = RasterSpecification{
		bandCount:   bandCount,
		rows:        rows,
		columns:     columns,
		resolutions: append([]int(nil), resolutions...),
	}
	return
}

func (s RasterSpecification) BandCount() int {
	return s.bandCount
}

func (s RasterSpecification) Rows() int {
	return s.rows
}

func (s RasterSpecification) Columns() int {
	return s.columns
}

func (s RasterSpecification) RadiometricResolutions() []int {
	return append([]int(nil), s.resolutions...)
}

func (s RasterSpecification) RadiometricResolution(bandIndex int) (r int, err error) {
	if bandIndex < 0 || bandIndex >= s.bandCount {
		err = fmt.Errorf("%w: bandIndex %d", ErrInvalidDimension, bandIndex)
		return
	}
	r = s.resolutions[bandIndex]
	return
}

// 栅格单元地址与其模型空间坐标的配对
type RasterCoordinate struct {
	RowIndex    int        `json:"row_index"`
	ColumnIndex int        `json:"column_index"`
	Coordinate  Coordinate `json:"coordinate"`
}

func NewRasterCoordinate(rowIndex, columnIndex int, mapper RasterMapper) (rc RasterCoordinate, err error) {
	if rowIndex < 0 {
		err = fmt.Errorf("%w: rowIndex %d", ErrInvalidDimension, rowIndex)
		return
	}
	if columnIndex < 0 {
		err = fmt.Errorf("%w: columnIndex %d", ErrInvalidDimension, columnIndex)
		return
	}
	if mapper == nil {
		err = fmt.Errorf("%w: mapper", ErrNullArgument)
		return
	}
	rc = RasterCoordinate{
		RowIndex:    rowIndex,
		ColumnIndex: columnIndex,
		Coordinate:  mapper.MapCoordinate(rowIndex, columnIndex),
	}
	return
}

// 栅格四角在模型空间中的包络环（闭合前四点，按左上起顺时针）
func rasterEnvelope(r Raster, mapper RasterMapper) LinearRing {
	rows, cols := r.Rows(), r.Columns()
	return LinearRing{
		mapper.MapCoordinate(0, 0),
		mapper.MapCoordinate(0, cols),
		mapper.MapCoordinate(rows, cols),
		mapper.MapCoordinate(rows, 0),
	}
}
