package spectrolib

import (
	"fmt"

	"github.com/wgdzlh/spectrolib/log"

	"go.uber.org/zap"
)

// 光谱面：矢量边界与配准多波段栅格的绑定，构造后不可变
type SpectralPolygon struct {
	shell        LinearRing
	holes        []LinearRing
	raster       Raster
	presentation RasterPresentation
	imaging      *RasterImaging
	metadata     Metadata
}

func (p *SpectralPolygon) Shell() LinearRing {
	return append(LinearRing(nil), p.shell...)
}

func (p *SpectralPolygon) Holes() []LinearRing {
	holes := make([]LinearRing, len(p.holes))
	for i, h := range p.holes {
		holes[i] = append(LinearRing(nil), h...)
	}
	return holes
}

func (p *SpectralPolygon) Raster() Raster {
	return p.raster
}

func (p *SpectralPolygon) Presentation() RasterPresentation {
	return p.presentation
}

func (p *SpectralPolygon) Imaging() *RasterImaging {
	return p.imaging.clone()
}

func (p *SpectralPolygon) Metadata() Metadata {
	md := make(Metadata, len(p.metadata))
	for k, v := range p.metadata {
		md[k] = v
	}
	return md
}

// 统一构造配置，各字段均可缺省（源侧上百个重载全部归并到此）
type SpectralGeometryRequest struct {
	// 复用已有栅格
	Raster Raster
	// 或按形制新建栅格
	Spec *RasterSpecification
	// 或深拷贝另一个光谱面的栅格（其边界、呈现、元数据一并作为缺省值）
	Source *SpectralPolygon
	// 新建栅格所用的映射；缺省时取Source/Raster自带映射
	Mapper RasterMapper
	// 边界：显式环优先，其次外部矢量面，再次Source，最后取栅格四角包络
	Shell        LinearRing
	Holes        []LinearRing
	Geometry     Polygon
	Presentation *RasterPresentation
	Imaging      *RasterImaging
	Metadata     Metadata
}

// 光谱几何构造器，持有栅格实现方
type SpectralGeometryBuilder struct {
	factory RasterFactory
	logTag  string
}

// factory可缺省，默认为内存栅格实现
func NewSpectralGeometryBuilder(factory ...RasterFactory) *SpectralGeometryBuilder {
	b := &SpectralGeometryBuilder{
		logTag: "SpectralBuilder:",
	}
	if len(factory) > 0 && factory[0] != nil {
		b.factory = factory[0]
	} else {
		b.factory = NewMemoryRasterFactory()
	}
	return b
}

// 唯一的规范构造路径：解析栅格、解析边界、校验、附着呈现与元数据。
// 构造全有或全无，失败时不产生部分构造的对象。
func (b *SpectralGeometryBuilder) Build(req SpectralGeometryRequest) (ret *SpectralPolygon, err error) {
	raster, err := b.resolveRaster(req)
	if err != nil {
		log.Error(b.logTag+"raster resolve failed", zap.Error(err))
		return
	}
	shell, holes, err := b.resolveBoundary(req, raster)
	if err != nil {
		log.Error(b.logTag+"boundary resolve failed", zap.Error(err))
		return
	}
	if len(shell) == 0 {
		err = ErrEmptyShell
		return
	}
	for i, h := range holes {
		if len(h) == 0 {
			err = fmt.Errorf("%w: hole %d", ErrEmptyShell, i)
			return
		}
	}
	if raster.BandCount() < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidBandCount, raster.BandCount())
		return
	}
	presentation := defaultPresentation()
	imaging := req.Imaging
	metadata := req.Metadata
	if req.Presentation != nil {
		presentation = *req.Presentation
	} else if req.Source != nil {
		presentation = req.Source.presentation
	}
	if imaging == nil && req.Source != nil {
		imaging = req.Source.imaging
	}
	if metadata == nil && req.Source != nil {
		metadata = req.Source.metadata
	}
	ret = &SpectralPolygon{
		shell:        append(LinearRing(nil), shell...),
		holes:        copyRings(holes),
		raster:       raster,
		presentation: presentation,
		imaging:      imaging.clone(),
		metadata:     copyMetadata(metadata),
	}
	log.Info(b.logTag+"spectral polygon built", zap.Int("bands", raster.BandCount()),
		zap.Int("rows", raster.Rows()), zap.Int("columns", raster.Columns()),
		zap.Int("holes", len(ret.holes)))
	return
}

func (b *SpectralGeometryBuilder) resolveRaster(req SpectralGeometryRequest) (raster Raster, err error) {
	switch {
	case req.Raster != nil:
		raster = req.Raster
	case req.Source != nil:
		if req.Source.raster == nil {
			err = fmt.Errorf("%w: source raster", ErrNullArgument)
			return
		}
		raster, err = b.factory.CloneRaster(req.Source.raster)
	case req.Spec != nil:
		mapper := req.Mapper
		raster, err = b.factory.CreateRaster(*req.Spec, mapper)
	default:
		err = fmt.Errorf("%w: raster", ErrNullArgument)
	}
	return
}

func (b *SpectralGeometryBuilder) resolveBoundary(req SpectralGeometryRequest, raster Raster) (shell LinearRing, holes []LinearRing, err error) {
	switch {
	case len(req.Shell) > 0:
		shell, holes = req.Shell, req.Holes
	case req.Geometry != nil:
		shell, holes = req.Geometry.Shell(), req.Geometry.Holes()
	case req.Source != nil:
		shell, holes = req.Source.shell, req.Source.holes
	default:
		mapper := req.Mapper
		if mapper == nil {
			mapper = raster.Mapper()
		}
		if mapper == nil {
			err = fmt.Errorf("%w: mapper", ErrNullArgument)
			return
		}
		shell = rasterEnvelope(raster, mapper)
	}
	return
}

// 按形制新建栅格并以其四角包络为边界
func (b *SpectralGeometryBuilder) CreateSpectralPolygon(spec RasterSpecification, mapper RasterMapper) (*SpectralPolygon, error) {
	return b.Build(SpectralGeometryRequest{Spec: &spec, Mapper: mapper})
}

// 复用已有栅格
func (b *SpectralGeometryBuilder) CreateSpectralPolygonFromRaster(raster Raster) (*SpectralPolygon, error) {
	return b.Build(SpectralGeometryRequest{Raster: raster})
}

// 边界取自外部矢量面
func (b *SpectralGeometryBuilder) CreateSpectralPolygonFromGeometry(geom Polygon, raster Raster) (ret *SpectralPolygon, err error) {
	if geom == nil {
		err = fmt.Errorf("%w: geometry", ErrNullArgument)
		return
	}
	md := geom.Metadata()
	return b.Build(SpectralGeometryRequest{Geometry: geom, Raster: raster, Metadata: md})
}

// 从另一光谱面克隆：栅格深拷贝，边界、呈现、成像、元数据随源
func (b *SpectralGeometryBuilder) CloneSpectralPolygon(other *SpectralPolygon) (ret *SpectralPolygon, err error) {
	if other == nil {
		err = fmt.Errorf("%w: other", ErrNullArgument)
		return
	}
	return b.Build(SpectralGeometryRequest{Source: other})
}

// 合并多个光谱面为一个：按序拼接各源栅格的波段，
// 边界、呈现、元数据取首元素；可选imaging参数覆盖首元素的成像元数据
func (b *SpectralGeometryBuilder) Merge(others []*SpectralPolygon, imaging ...*RasterImaging) (ret *SpectralPolygon, err error) {
	if len(others) == 0 {
		err = ErrEmptyOthersCollection
		return
	}
	rasters := make([]Raster, len(others))
	for i, o := range others {
		if o == nil || o.raster == nil {
			err = fmt.Errorf("%w: others[%d]", ErrNullArgument, i)
			return
		}
		rasters[i] = o.raster
	}
	merged, err := b.factory.MergeRasters(rasters)
	if err != nil {
		log.Error(b.logTag+"raster merge failed", zap.Int("sources", len(others)), zap.Error(err))
		return
	}
	first := others[0]
	req := SpectralGeometryRequest{
		Raster:       merged,
		Shell:        first.shell,
		Holes:        first.holes,
		Presentation: &first.presentation,
		Imaging:      first.imaging,
		Metadata:     first.metadata,
	}
	if len(imaging) > 0 && imaging[0] != nil {
		req.Imaging = imaging[0]
	}
	return b.Build(req)
}

func copyRings(rings []LinearRing) []LinearRing {
	if len(rings) == 0 {
		return nil
	}
	out := make([]LinearRing, len(rings))
	for i, r := range rings {
		out[i] = append(LinearRing(nil), r...)
	}
	return out
}

func copyMetadata(md Metadata) Metadata {
	out := make(Metadata, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out
}
