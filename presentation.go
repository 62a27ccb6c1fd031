package spectrolib

import (
	"fmt"
	"sort"
)

// 呈现模式：波段列表类与色彩映射类两种形态互斥
type PresentationModel int

const (
	TrueColor PresentationModel = iota
	FalseColor
	Grayscale
	InvertedGrayscale
	Transparency
	PseudoColor
	DensitySlicing
)

type ColorSpace int

const (
	ColorSpaceNone ColorSpace = iota
	ColorSpaceRGB
	ColorSpaceHSV
	ColorSpaceHSL
	ColorSpaceCMYK
	ColorSpaceYCbCr
	ColorSpaceCIELab
)

// 波段在色彩空间中的通道角色
type ColorSpaceBand int

const (
	BandUndefined ColorSpaceBand = iota
	BandRed
	BandGreen
	BandBlue
	BandHue
	BandSaturation
	BandValue
	BandLightness
	BandCyan
	BandMagenta
	BandYellow
	BandBlack
	BandLuma
	BandBlueDifferenceChroma
	BandRedDifferenceChroma
	BandA
	BandB
)

// 像元值到RGBA调色板项的查找表
type ColorMap map[int][4]uint16

// 栅格波段到可显示颜色的映射规则，构造后不可变
type RasterPresentation struct {
	model      PresentationModel
	colorSpace ColorSpace
	bands      []ColorSpaceBand
	colorMap   ColorMap
}

// 各色彩空间的规范通道次序
func canonicalBands(cs ColorSpace) []ColorSpaceBand {
	switch cs {
	case ColorSpaceRGB:
		return []ColorSpaceBand{BandRed, BandGreen, BandBlue}
	case ColorSpaceHSV:
		return []ColorSpaceBand{BandHue, BandSaturation, BandValue}
	case ColorSpaceHSL:
		return []ColorSpaceBand{BandHue, BandSaturation, BandLightness}
	case ColorSpaceCMYK:
		return []ColorSpaceBand{BandCyan, BandMagenta, BandYellow, BandBlack}
	case ColorSpaceYCbCr:
		return []ColorSpaceBand{BandLuma, BandBlueDifferenceChroma, BandRedDifferenceChroma}
	case ColorSpaceCIELab:
		return []ColorSpaceBand{BandLightness, BandA, BandB}
	default:
		return []ColorSpaceBand{BandValue}
	}
}

// 波段列表形态的通用构造，色彩映射类模式走NewColorMapPresentation
func NewRasterPresentation(model PresentationModel, colorSpace ColorSpace, bands []ColorSpaceBand) (p RasterPresentation, err error) {
	if model == PseudoColor || model == DensitySlicing {
		err = fmt.Errorf("%w: model %d takes a color map, not bands", ErrIncompatiblePresentation, model)
		return
	}
	if len(bands) == 0 {
		err = fmt.Errorf("%w: bands", ErrNullArgument)
		return
	}
	p = RasterPresentation{
		model:      model,
		colorSpace: colorSpace,
		bands:      append([]ColorSpaceBand(nil), bands...),
	}
	return
}

// 色彩映射形态的通用构造，波段列表强制为单个Value通道
func NewColorMapPresentation(model PresentationModel, colorMap ColorMap) (p RasterPresentation, err error) {
	if model != PseudoColor && model != DensitySlicing {
		err = fmt.Errorf("%w: model %d takes bands, not a color map", ErrIncompatiblePresentation, model)
		return
	}
	if len(colorMap) == 0 {
		err = ErrNullColorMap
		return
	}
	cm := make(ColorMap, len(colorMap))
	for k, v := range colorMap {
		cm[k] = v
	}
	p = RasterPresentation{
		model:      model,
		colorSpace: ColorSpaceNone,
		bands:      []ColorSpaceBand{BandValue},
		colorMap:   cm,
	}
	return
}

// 按色彩空间规范次序生成波段列表
func NewCanonicalPresentation(model PresentationModel, colorSpace ColorSpace) (RasterPresentation, error) {
	return NewRasterPresentation(model, colorSpace, canonicalBands(colorSpace))
}

func NewTrueColorPresentation() (RasterPresentation, error) {
	return NewCanonicalPresentation(TrueColor, ColorSpaceRGB)
}

// 指定红绿蓝通道所在的栅格波段序号，未占用的槽位标记为Undefined
func NewTrueColorPresentationWithOrder(indexOfRedBand, indexOfGreenBand, indexOfBlueBand int) (RasterPresentation, error) {
	return newOrderedPresentation(TrueColor, indexOfRedBand, indexOfGreenBand, indexOfBlueBand)
}

func NewFalseColorPresentation(indexOfRedBand, indexOfGreenBand, indexOfBlueBand int) (RasterPresentation, error) {
	return newOrderedPresentation(FalseColor, indexOfRedBand, indexOfGreenBand, indexOfBlueBand)
}

func newOrderedPresentation(model PresentationModel, redIdx, greenIdx, blueIdx int) (p RasterPresentation, err error) {
	idx := []int{redIdx, greenIdx, blueIdx}
	for _, i := range idx {
		if i < 0 {
			err = fmt.Errorf("%w: band index %d", ErrInvalidDimension, i)
			return
		}
	}
	sorted := append([]int(nil), idx...)
	sort.Ints(sorted)
	if sorted[0] == sorted[1] || sorted[1] == sorted[2] {
		err = fmt.Errorf("%w: %v", ErrDuplicateBandIndex, idx)
		return
	}
	bands := make([]ColorSpaceBand, sorted[2]+1)
	bands[redIdx] = BandRed
	bands[greenIdx] = BandGreen
	bands[blueIdx] = BandBlue
	p = RasterPresentation{
		model:      model,
		colorSpace: ColorSpaceRGB,
		bands:      bands,
	}
	return
}

func NewGrayscalePresentation() (RasterPresentation, error) {
	return NewRasterPresentation(Grayscale, ColorSpaceNone, []ColorSpaceBand{BandValue})
}

func NewInvertedGrayscalePresentation() (RasterPresentation, error) {
	return NewRasterPresentation(InvertedGrayscale, ColorSpaceNone, []ColorSpaceBand{BandValue})
}

func NewTransparencyPresentation() (RasterPresentation, error) {
	return NewRasterPresentation(Transparency, ColorSpaceNone, []ColorSpaceBand{BandValue})
}

func NewPseudoColorPresentation(colorMap ColorMap) (RasterPresentation, error) {
	return NewColorMapPresentation(PseudoColor, colorMap)
}

func NewDensitySlicingPresentation(colorMap ColorMap) (RasterPresentation, error) {
	return NewColorMapPresentation(DensitySlicing, colorMap)
}

// 缺省呈现：单Value通道灰度
func defaultPresentation() RasterPresentation {
	return RasterPresentation{
		model:      Grayscale,
		colorSpace: ColorSpaceNone,
		bands:      []ColorSpaceBand{BandValue},
	}
}

func (p RasterPresentation) Model() PresentationModel {
	return p.model
}

func (p RasterPresentation) ColorSpace() ColorSpace {
	return p.colorSpace
}

func (p RasterPresentation) Bands() []ColorSpaceBand {
	return append([]ColorSpaceBand(nil), p.bands...)
}

func (p RasterPresentation) Band(i int) ColorSpaceBand {
	if i < 0 || i >= len(p.bands) {
		return BandUndefined
	}
	return p.bands[i]
}

func (p RasterPresentation) ColorMap() ColorMap {
	if p.colorMap == nil {
		return nil
	}
	cm := make(ColorMap, len(p.colorMap))
	for k, v := range p.colorMap {
		cm[k] = v
	}
	return cm
}
