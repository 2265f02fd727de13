package colorspace

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want RGB
	}{
		{"#000000", RGB{0, 0, 0}},
		{"#FFFFFF", RGB{255, 255, 255}},
		{"#ffffff", RGB{255, 255, 255}},
		{"#Ef4444", RGB{0xef, 0x44, 0x44}},
		{"ef4444", RGB{0xef, 0x44, 0x44}},
		{"  #ef4444\n", RGB{0xef, 0x44, 0x44}},
		{"#fff", RGB{255, 255, 255}},
		{"#F0A", RGB{0xff, 0x00, 0xaa}},
		{"#f0a8", RGB{0xff, 0x00, 0xaa}},
		{"#12345678", RGB{0x12, 0x34, 0x56}},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseHex_invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"#",
		"#12",
		"#12345",
		"#1234567",
		"#GGGGGG",
		"#12 456",
		"rgb(1,2,3)",
		"##123456",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			require.Error(t, err)
			assert.Equal(t, ErrInvalidColorFormat, errors.Cause(err))
		})
	}
}

func TestNewRGB(t *testing.T) {
	c, err := NewRGB(255, 128, 0)
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 128, 0}, c)

	for _, bad := range [][3]int{{-1, 0, 0}, {0, 256, 0}, {0, 0, 1000}} {
		_, err := NewRGB(bad[0], bad[1], bad[2])
		assert.Equal(t, ErrInvalidColorFormat, errors.Cause(err), "%v", bad)
	}
}

func TestRGB_colorRoundTrip(t *testing.T) {
	c := RGB{0x12, 0xab, 0xfe}
	assert.Equal(t, "#12abfe", c.Hex())
	assert.Equal(t, c, FromColor(color.RGBA{0x12, 0xab, 0xfe, 0xff}))
	assert.Equal(t, c, FromColor(color.NRGBAModel.Convert(c)))

	parsed, err := ParseHex(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestToLab_reference(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   RGB
		want Lab
	}{
		{"black", RGB{0, 0, 0}, Lab{0, 0, 0}},
		{"white", RGB{255, 255, 255}, Lab{100, 0, 0}},
		{"red", RGB{255, 0, 0}, Lab{53.24, 80.09, 67.20}},
		{"blue", RGB{0, 0, 255}, Lab{32.30, 79.19, -107.86}},
		{"gray", RGB{128, 128, 128}, Lab{53.585, 0, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ToLab(tc.in)
			assert.InDelta(t, tc.want.L, got.L, 0.01, "L")
			assert.InDelta(t, tc.want.A, got.A, 0.01, "a")
			assert.InDelta(t, tc.want.B, got.B, 0.01, "b")
		})
	}
}

func TestToLab_deterministic(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				lab := ToLab(c)
				assert.Equal(t, lab, ToLab(c))
				assert.True(t, lab.L >= 0 && lab.L <= 100.0001, "%v -> %v", c, lab)
			}
		}
	}
}

func TestConverters_agree(t *testing.T) {
	samples := []RGB{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{239, 68, 68}, {20, 184, 166}, {100, 116, 139}, {250, 250, 249},
	}
	for _, name := range Converters() {
		conv, err := ConverterByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, conv.Name())
		for _, c := range samples {
			want, got := ToLab(c), conv.Lab(c)
			assert.InDelta(t, want.L, got.L, 0.5, "%s %v L", name, c)
			assert.InDelta(t, want.A, got.A, 0.5, "%s %v a", name, c)
			assert.InDelta(t, want.B, got.B, 0.5, "%s %v b", name, c)
		}
	}
}

func TestConverterByName(t *testing.T) {
	c, err := ConverterByName("")
	require.NoError(t, err)
	assert.Equal(t, CIE{}, c)

	_, err = ConverterByName("hsluv")
	assert.Error(t, err)
	assert.Equal(t, []string{"chromath", "cie", "colorful"}, Converters())
}
