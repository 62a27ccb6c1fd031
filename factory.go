package spectrolib

import (
	"sync"
)

// 通用矢量几何工厂的扩展面：按名称注册/查找扩展实例
type GeometryFactory struct {
	exts  map[string]any
	eLock sync.Mutex
}

func NewGeometryFactory() *GeometryFactory {
	return &GeometryFactory{
		exts: map[string]any{},
	}
}

func (f *GeometryFactory) Register(name string, ext any) {
	f.eLock.Lock()
	defer f.eLock.Unlock()
	f.exts[name] = ext
}

func (f *GeometryFactory) Extension(name string) (ext any, ok bool) {
	f.eLock.Lock()
	defer f.eLock.Unlock()
	ext, ok = f.exts[name]
	return
}

// 取光谱扩展的构造器实例，首次调用时注册缺省构造器（幂等）
func (f *GeometryFactory) SpectralBuilder() *SpectralGeometryBuilder {
	f.eLock.Lock()
	defer f.eLock.Unlock()
	if ext, ok := f.exts[SPECTRAL_EXTENSION]; ok {
		if b, ok := ext.(*SpectralGeometryBuilder); ok {
			return b
		}
	}
	b := NewSpectralGeometryBuilder()
	f.exts[SPECTRAL_EXTENSION] = b
	return b
}
