package spectrolib

import (
	"errors"
	"testing"
)

func TestRasterSpecification(t *testing.T) {
	spec, err := NewRasterSpecification(3, 100, 200, 12)
	if err != nil {
		t.Fatal(err)
	}
	if spec.BandCount() != 3 || spec.Rows() != 100 || spec.Columns() != 200 {
		t.Fatal("spec shape mismatch")
	}
	for i := 0; i < 3; i++ {
		r, e := spec.RadiometricResolution(i)
		if e != nil || r != 12 {
			t.Fatal("resolution mismatch", i, r, e)
		}
	}
	raster, err := NewMemoryRasterFactory().CreateRaster(spec, GridMapper{})
	if err != nil {
		t.Fatal(err)
	}
	if raster.BandCount() != 3 || raster.Rows() != 100 || raster.Columns() != 200 {
		t.Fatal("raster shape mismatch")
	}
	res := raster.RadiometricResolutions()
	if len(res) != 3 || res[0] != 12 || res[2] != 12 {
		t.Fatal("raster resolutions mismatch", res)
	}
}

func TestRasterSpecificationRejects(t *testing.T) {
	if _, err := NewRasterSpecification(0, 10, 10, 8); !errors.Is(err, ErrInvalidBandCount) {
		t.Fatal("want ErrInvalidBandCount, got", err)
	}
	if _, err := NewRasterSpecification(1, -1, 10, 8); !errors.Is(err, ErrInvalidDimension) {
		t.Fatal("want ErrInvalidDimension, got", err)
	}
	if _, err := NewRasterSpecification(1, 10, -3, 8); !errors.Is(err, ErrInvalidDimension) {
		t.Fatal("want ErrInvalidDimension, got", err)
	}
	if _, err := NewRasterSpecification(1, 10, 10, 0); !errors.Is(err, ErrInvalidRadiometricResolution) {
		t.Fatal("want ErrInvalidRadiometricResolution, got", err)
	}
	if _, err := NewRasterSpecification(1, 10, 10, 65); !errors.Is(err, ErrInvalidRadiometricResolution) {
		t.Fatal("want ErrInvalidRadiometricResolution, got", err)
	}
	// 分辨率列表长度必须等于波段数
	if _, err := NewBandedRasterSpecification(3, 10, 10, []int{8, 8}); !errors.Is(err, ErrBandResolutionMismatch) {
		t.Fatal("want ErrBandResolutionMismatch, got", err)
	}
	if _, err := NewBandedRasterSpecification(2, 10, 10, []int{8, 99}); !errors.Is(err, ErrInvalidRadiometricResolution) {
		t.Fatal("want ErrInvalidRadiometricResolution, got", err)
	}
}

func TestMemRasterValueMask(t *testing.T) {
	spec, err := NewRasterSpecification(1, 4, 4, 8)
	if err != nil {
		t.Fatal(err)
	}
	raster, err := NewMemoryRasterFactory().CreateRaster(spec, GridMapper{})
	if err != nil {
		t.Fatal(err)
	}
	raster.SetValue(1, 2, 0, 0x1ff)
	if v := raster.Value(1, 2, 0); v != 0xff {
		t.Fatal("value not masked to 8 bits:", v)
	}
}

func TestCloneRasterDeepCopy(t *testing.T) {
	f := NewMemoryRasterFactory()
	spec, err := NewRasterSpecification(2, 8, 8, 16)
	if err != nil {
		t.Fatal(err)
	}
	src, err := f.CreateRaster(spec, GridMapper{})
	if err != nil {
		t.Fatal(err)
	}
	src.SetValue(3, 3, 1, 777)
	clone, err := f.CloneRaster(src)
	if err != nil {
		t.Fatal(err)
	}
	if clone == src {
		t.Fatal("clone must be reference-distinct")
	}
	if clone.Value(3, 3, 1) != 777 {
		t.Fatal("clone value mismatch")
	}
	clone.SetValue(3, 3, 1, 111)
	if src.Value(3, 3, 1) != 777 {
		t.Fatal("mutating clone leaked into source")
	}
}

func TestMergeRastersRejectsNilSource(t *testing.T) {
	f := NewMemoryRasterFactory()
	if _, err := f.MergeRasters([]Raster{nil}); !errors.Is(err, ErrNullArgument) {
		t.Fatal("want ErrNullArgument for nil first source, got", err)
	}
	spec, err := NewRasterSpecification(1, 4, 4, 8)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.CreateRaster(spec, GridMapper{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = f.MergeRasters([]Raster{r, nil}); !errors.Is(err, ErrNullArgument) {
		t.Fatal("want ErrNullArgument for nil trailing source, got", err)
	}
	if _, err = f.MergeRasters(nil); !errors.Is(err, ErrNullArgument) {
		t.Fatal("want ErrNullArgument for empty sources, got", err)
	}
}

func TestRasterCoordinate(t *testing.T) {
	mapper := NewScaledMapper(100, 50, 0.5, -0.5)
	rc, err := NewRasterCoordinate(2, 4, mapper)
	if err != nil {
		t.Fatal(err)
	}
	if rc.Coordinate.X != 102 || rc.Coordinate.Y != 49 {
		t.Fatal("mapped coordinate mismatch", rc.Coordinate)
	}
	row, col := mapper.MapRaster(rc.Coordinate)
	if row != 2 || col != 4 {
		t.Fatal("inverse mapping mismatch", row, col)
	}
	if _, err = NewRasterCoordinate(-1, 0, mapper); !errors.Is(err, ErrInvalidDimension) {
		t.Fatal("want ErrInvalidDimension, got", err)
	}
	if _, err = NewRasterCoordinate(0, 0, nil); !errors.Is(err, ErrNullArgument) {
		t.Fatal("want ErrNullArgument, got", err)
	}
}

func TestWebMercatorRoundTrip(t *testing.T) {
	x, y := Convert4326To3857(113.695688629, 29.971802123)
	lon, lat := Convert3857To4326(x, y)
	if lon < 113.69 || lon > 113.70 || lat < 29.97 || lat > 29.98 {
		t.Fatal("round trip drifted", lon, lat)
	}
}
