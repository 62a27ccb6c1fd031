package spectrolib

import (
	"fmt"
	"sort"
	"sync"
)

// 波长区间，单位为米，构造后不可变
type SpectralRange struct {
	start float64
	end   float64
}

func NewSpectralRange(start, end float64) SpectralRange {
	if end < start {
		start, end = end, start
	}
	return SpectralRange{start: start, end: end}
}

func (r SpectralRange) Start() float64 {
	return r.start
}

func (r SpectralRange) End() float64 {
	return r.end
}

func (r SpectralRange) Contains(wavelength float64) bool {
	return wavelength >= r.start && wavelength <= r.end
}

func (r SpectralRange) ContainsRange(o SpectralRange) bool {
	return o.start >= r.start && o.end <= r.end
}

func (r SpectralRange) Center() float64 {
	return (r.start + r.end) / 2
}

const (
	RangeUltraviolet              = "ultraviolet"
	RangeViolet                   = "violet"
	RangeBlue                     = "blue"
	RangeGreen                    = "green"
	RangeYellow                   = "yellow"
	RangeOrange                   = "orange"
	RangeRed                      = "red"
	RangeVisible                  = "visible"
	RangeNearInfrared             = "near infrared"
	RangeShortWavelengthInfrared  = "short wavelength infrared"
	RangeMiddleWavelengthInfrared = "middle wavelength infrared"
	RangeLongWavelengthInfrared   = "long wavelength infrared"
	RangeFarInfrared              = "far infrared"
	RangeInfrared                 = "infrared"
)

// 各命名区间的界限，区间有意重叠（如可见光包含红光）
var rangeBounds = map[string][2]float64{
	RangeUltraviolet:              {10 * Nanometer, 400 * Nanometer},
	RangeViolet:                   {380 * Nanometer, 450 * Nanometer},
	RangeBlue:                     {450 * Nanometer, 495 * Nanometer},
	RangeGreen:                    {495 * Nanometer, 570 * Nanometer},
	RangeYellow:                   {570 * Nanometer, 590 * Nanometer},
	RangeOrange:                   {590 * Nanometer, 620 * Nanometer},
	RangeRed:                      {620 * Nanometer, 750 * Nanometer},
	RangeVisible:                  {380 * Nanometer, 750 * Nanometer},
	RangeNearInfrared:             {750 * Nanometer, 1.4 * Micrometer},
	RangeShortWavelengthInfrared:  {1.4 * Micrometer, 3 * Micrometer},
	RangeMiddleWavelengthInfrared: {3 * Micrometer, 8 * Micrometer},
	RangeLongWavelengthInfrared:   {8 * Micrometer, 15 * Micrometer},
	RangeFarInfrared:              {15 * Micrometer, 1 * Millimeter},
	RangeInfrared:                 {750 * Nanometer, 1 * Millimeter},
}

// 懒构建的进程级区间缓存，值恒定故重复构建无害
var (
	rangeLock  sync.Mutex
	rangeCache = map[string]SpectralRange{}
)

// 按名称取命名波长区间，结果为缓存的不可变单例
func RangeOf(name string) (r SpectralRange, err error) {
	rangeLock.Lock()
	defer rangeLock.Unlock()
	r, ok := rangeCache[name]
	if ok {
		return
	}
	bounds, ok := rangeBounds[name]
	if !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownSpectralRange, name)
		return
	}
	r = NewSpectralRange(bounds[0], bounds[1])
	rangeCache[name] = r
	return
}

// 返回包含给定波长的所有命名区间（区间重叠，故结果为集合）
func Classify(wavelengthMeters float64) (names []string) {
	for name := range rangeBounds {
		if r, e := RangeOf(name); e == nil && r.Contains(wavelengthMeters) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return
}

func Ultraviolet() SpectralRange  { r, _ := RangeOf(RangeUltraviolet); return r }
func Violet() SpectralRange       { r, _ := RangeOf(RangeViolet); return r }
func Blue() SpectralRange         { r, _ := RangeOf(RangeBlue); return r }
func Green() SpectralRange        { r, _ := RangeOf(RangeGreen); return r }
func Yellow() SpectralRange       { r, _ := RangeOf(RangeYellow); return r }
func Orange() SpectralRange       { r, _ := RangeOf(RangeOrange); return r }
func Red() SpectralRange          { r, _ := RangeOf(RangeRed); return r }
func Visible() SpectralRange      { r, _ := RangeOf(RangeVisible); return r }
func NearInfrared() SpectralRange { r, _ := RangeOf(RangeNearInfrared); return r }
func ShortWavelengthInfrared() SpectralRange {
	r, _ := RangeOf(RangeShortWavelengthInfrared)
	return r
}
func MiddleWavelengthInfrared() SpectralRange {
	r, _ := RangeOf(RangeMiddleWavelengthInfrared)
	return r
}
func LongWavelengthInfrared() SpectralRange {
	r, _ := RangeOf(RangeLongWavelengthInfrared)
	return r
}
func FarInfrared() SpectralRange { r, _ := RangeOf(RangeFarInfrared); return r }
func Infrared() SpectralRange    { r, _ := RangeOf(RangeInfrared); return r }
