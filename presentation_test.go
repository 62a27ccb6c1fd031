package spectrolib

import (
	"errors"
	"testing"
)

func TestPseudoColorRejectsBands(t *testing.T) {
	_, err := NewRasterPresentation(PseudoColor, ColorSpaceRGB, []ColorSpaceBand{BandRed, BandGreen, BandBlue})
	if !errors.Is(err, ErrIncompatiblePresentation) {
		t.Fatal("want ErrIncompatiblePresentation, got", err)
	}
	_, err = NewRasterPresentation(DensitySlicing, ColorSpaceNone, []ColorSpaceBand{BandValue})
	if !errors.Is(err, ErrIncompatiblePresentation) {
		t.Fatal("want ErrIncompatiblePresentation, got", err)
	}
}

func TestColorMapPresentation(t *testing.T) {
	cm := ColorMap{
		0: {0, 0, 0, 65535},
		1: {65535, 0, 0, 65535},
	}
	p, err := NewPseudoColorPresentation(cm)
	if err != nil {
		t.Fatal(err)
	}
	bands := p.Bands()
	if len(bands) != 1 || bands[0] != BandValue {
		t.Fatal("color map presentation must force a single Value band:", bands)
	}
	// 返回的映射表是副本，改动不回流
	got := p.ColorMap()
	got[0] = [4]uint16{1, 2, 3, 4}
	if p.ColorMap()[0] != [4]uint16{0, 0, 0, 65535} {
		t.Fatal("color map must be defensively copied")
	}
	if _, err = NewColorMapPresentation(PseudoColor, nil); !errors.Is(err, ErrNullColorMap) {
		t.Fatal("want ErrNullColorMap, got", err)
	}
	if _, err = NewColorMapPresentation(TrueColor, cm); !errors.Is(err, ErrIncompatiblePresentation) {
		t.Fatal("want ErrIncompatiblePresentation, got", err)
	}
}

func TestCanonicalBandOrders(t *testing.T) {
	cases := []struct {
		cs    ColorSpace
		bands []ColorSpaceBand
	}{
		{ColorSpaceRGB, []ColorSpaceBand{BandRed, BandGreen, BandBlue}},
		{ColorSpaceCIELab, []ColorSpaceBand{BandLightness, BandA, BandB}},
		{ColorSpaceCMYK, []ColorSpaceBand{BandCyan, BandMagenta, BandYellow, BandBlack}},
		{ColorSpaceHSL, []ColorSpaceBand{BandHue, BandSaturation, BandLightness}},
		{ColorSpaceHSV, []ColorSpaceBand{BandHue, BandSaturation, BandValue}},
		{ColorSpaceYCbCr, []ColorSpaceBand{BandLuma, BandBlueDifferenceChroma, BandRedDifferenceChroma}},
	}
	for _, c := range cases {
		p, err := NewCanonicalPresentation(FalseColor, c.cs)
		if err != nil {
			t.Fatal(c.cs, err)
		}
		bands := p.Bands()
		if len(bands) != len(c.bands) {
			t.Fatal(c.cs, "band count mismatch", bands)
		}
		for i := range bands {
			if bands[i] != c.bands[i] {
				t.Fatal(c.cs, "band order mismatch at", i, bands)
			}
		}
	}
}

func TestTrueColorCustomOrder(t *testing.T) {
	p, err := NewTrueColorPresentationWithOrder(2, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	bands := p.Bands()
	if len(bands) != 3 {
		t.Fatal("band array must be sized to max index + 1:", bands)
	}
	if bands[2] != BandRed || bands[0] != BandGreen || bands[1] != BandBlue {
		t.Fatal("custom order not honored:", bands)
	}
	// 稀疏序号时空槽位标记为Undefined
	p, err = NewTrueColorPresentationWithOrder(4, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	bands = p.Bands()
	if len(bands) != 5 || bands[1] != BandUndefined || bands[3] != BandUndefined {
		t.Fatal("unfilled slots must be Undefined:", bands)
	}
}

func TestTrueColorCustomOrderRejects(t *testing.T) {
	if _, err := NewTrueColorPresentationWithOrder(1, 1, 2); !errors.Is(err, ErrDuplicateBandIndex) {
		t.Fatal("want ErrDuplicateBandIndex, got", err)
	}
	if _, err := NewFalseColorPresentation(0, 2, 2); !errors.Is(err, ErrDuplicateBandIndex) {
		t.Fatal("want ErrDuplicateBandIndex, got", err)
	}
	if _, err := NewTrueColorPresentationWithOrder(-1, 0, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Fatal("want ErrInvalidDimension, got", err)
	}
}

func TestEmptyBandListRejected(t *testing.T) {
	if _, err := NewRasterPresentation(Grayscale, ColorSpaceNone, nil); !errors.Is(err, ErrNullArgument) {
		t.Fatal("want ErrNullArgument, got", err)
	}
}
