package spectrolib

import (
	"encoding/json"
	"time"

	"github.com/wgdzlh/spectrolib/utils"
)

// 单个波段的成像参数
type ImagingBand struct {
	Description     string        `json:"description"`
	PhysicalGain    float64       `json:"physical_gain"`
	PhysicalBias    float64       `json:"physical_bias"`
	SolarIrradiance float64       `json:"solar_irradiance"`
	Range           SpectralRange `json:"-"`
	RangeStart      float64       `json:"range_start"`
	RangeEnd        float64       `json:"range_end"`
}

// 传感器/获取元数据，附着于栅格，构造后不再变更
type RasterImaging struct {
	Device         string        `json:"device"`
	Time           time.Time     `json:"time"`
	DeviceLocation Coordinate    `json:"device_location"`
	IncidenceAngle float64       `json:"incidence_angle"`
	ViewingAngle   float64       `json:"viewing_angle"`
	SunAzimuth     float64       `json:"sun_azimuth"`
	SunElevation   float64       `json:"sun_elevation"`
	Bands          []ImagingBand `json:"bands"`
}

// 文本字段统一规范化为UTF-8（旧式星历目录常见GBK编码）
func NewRasterImaging(device string, acqTime time.Time, location Coordinate,
	incidenceAngle, viewingAngle, sunAzimuth, sunElevation float64, bands ...ImagingBand) *RasterImaging {
	im := &RasterImaging{
		Device:         utils.NormalizeFieldText(device),
		Time:           acqTime,
		DeviceLocation: location,
		IncidenceAngle: incidenceAngle,
		ViewingAngle:   viewingAngle,
		SunAzimuth:     sunAzimuth,
		SunElevation:   sunElevation,
		Bands:          make([]ImagingBand, len(bands)),
	}
	for i, b := range bands {
		b.Description = utils.NormalizeFieldText(b.Description)
		b.RangeStart = b.Range.Start()
		b.RangeEnd = b.Range.End()
		im.Bands[i] = b
	}
	return im
}

// 各波段中心波长所落入的命名光谱区间
func (im *RasterImaging) SpectralDomains() (domains [][]string) {
	domains = make([][]string, len(im.Bands))
	for i, b := range im.Bands {
		domains[i] = Classify(b.Range.Center())
	}
	return
}

func (im *RasterImaging) clone() *RasterImaging {
	if im == nil {
		return nil
	}
	c := *im
	c.Bands = append([]ImagingBand(nil), im.Bands...)
	return &c
}

// 供下游格式驱动消费的JSON形式
func (im *RasterImaging) ToJSON() (ret AnyJson, err error) {
	return json.Marshal(im)
}
