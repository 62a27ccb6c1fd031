package spectrolib

import "encoding/json"

type AnyJson = json.RawMessage

// 附加在几何对象上的不透明元数据
type Metadata = map[string]any

// 模型空间坐标（Z可缺省）
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// 线性环，首尾可不闭合，空环视为缺失
type LinearRing []Coordinate

// 外部矢量几何
type Geometry interface {
	Metadata() Metadata
}

// 外部矢量面：一个外环加零或多个内环（洞）
type Polygon interface {
	Geometry
	Shell() LinearRing
	Holes() []LinearRing
}
