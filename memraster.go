package spectrolib

import (
	"fmt"

	"github.com/wgdzlh/spectrolib/log"

	"go.uber.org/zap"
)

// 内存栅格实现方：每波段一个独立样本面
type MemoryRasterFactory struct {
	logTag string
}

func NewMemoryRasterFactory() *MemoryRasterFactory {
	return &MemoryRasterFactory{
		logTag: "MemRasterFactory:",
	}
}

type memRaster struct {
	rows        int
	columns     int
	resolutions []int
	planes      [][]uint64
	mapper      RasterMapper
}

func (f *MemoryRasterFactory) CreateRaster(spec RasterSpecification, mapper RasterMapper) (Raster, error) {
	r := &memRaster{
		rows:        spec.Rows(),
		columns:     spec.Columns(),
		resolutions: spec.RadiometricResolutions(),
		planes:      make([][]uint64, spec.BandCount()),
		mapper:      mapper,
	}
	size := r.rows * r.columns
	for i := range r.planes {
		r.planes[i] = make([]uint64, size)
	}
	log.Info(f.logTag+"raster created", zap.Int("bands", spec.BandCount()),
		zap.Int("rows", r.rows), zap.Int("columns", r.columns))
	return r, nil
}

func (f *MemoryRasterFactory) CloneRaster(source Raster) (ret Raster, err error) {
	if source == nil {
		err = fmt.Errorf("%w: source", ErrNullArgument)
		return
	}
	r := &memRaster{
		rows:        source.Rows(),
		columns:     source.Columns(),
		resolutions: append([]int(nil), source.RadiometricResolutions()...),
		planes:      make([][]uint64, source.BandCount()),
		mapper:      source.Mapper(),
	}
	if ms, ok := source.(*memRaster); ok {
		for i, p := range ms.planes {
			r.planes[i] = append([]uint64(nil), p...)
		}
	} else {
		size := r.rows * r.columns
		for b := range r.planes {
			r.planes[b] = make([]uint64, size)
			for row := 0; row < r.rows; row++ {
				for col := 0; col < r.columns; col++ {
					r.planes[b][row*r.columns+col] = source.Value(row, col, b)
				}
			}
		}
	}
	ret = r
	return
}

func (f *MemoryRasterFactory) MergeRasters(sources []Raster) (ret Raster, err error) {
	if len(sources) == 0 {
		err = fmt.Errorf("%w: sources", ErrNullArgument)
		return
	}
	for i, s := range sources {
		if s == nil {
			err = fmt.Errorf("%w: sources[%d]", ErrNullArgument, i)
			return
		}
	}
	first := sources[0]
	r := &memRaster{
		rows:    first.Rows(),
		columns: first.Columns(),
		mapper:  first.Mapper(),
	}
	for i, s := range sources {
		if s.Rows() != r.rows || s.Columns() != r.columns {
			err = fmt.Errorf("%w: sources[%d] is %dx%d, want %dx%d", ErrInvalidDimension,
				i, s.Rows(), s.Columns(), r.rows, r.columns)
			return
		}
		var clone Raster
		if clone, err = f.CloneRaster(s); err != nil {
			return
		}
		mc := clone.(*memRaster)
		r.resolutions = append(r.resolutions, mc.resolutions...)
		r.planes = append(r.planes, mc.planes...)
	}
	log.Info(f.logTag+"rasters merged", zap.Int("sources", len(sources)), zap.Int("bands", len(r.planes)))
	ret = r
	return
}

func (r *memRaster) BandCount() int {
	return len(r.planes)
}

func (r *memRaster) Rows() int {
	return r.rows
}

func (r *memRaster) Columns() int {
	return r.columns
}

func (r *memRaster) RadiometricResolutions() []int {
	return append([]int(nil), r.resolutions...)
}

func (r *memRaster) Mapper() RasterMapper {
	return r.mapper
}

func (r *memRaster) Value(rowIndex, columnIndex, bandIndex int) uint64 {
	if !r.inBounds(rowIndex, columnIndex, bandIndex) {
		return 0
	}
	return r.planes[bandIndex][rowIndex*r.columns+columnIndex]
}

// 值按波段辐射分辨率掩码截断
func (r *memRaster) SetValue(rowIndex, columnIndex, bandIndex int, value uint64) {
	if !r.inBounds(rowIndex, columnIndex, bandIndex) {
		return
	}
	if bits := r.resolutions[bandIndex]; bits < 64 {
		value &= 1<<bits - 1
	}
	r.planes[bandIndex][rowIndex*r.columns+columnIndex] = value
}

func (r *memRaster) inBounds(rowIndex, columnIndex, bandIndex int) bool {
	return rowIndex >= 0 && rowIndex < r.rows &&
		columnIndex >= 0 && columnIndex < r.columns &&
		bandIndex >= 0 && bandIndex < len(r.planes)
}
