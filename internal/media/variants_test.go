package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 60, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func pngImage(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestGenerateResponsiveVariants(t *testing.T) {
	src := jpegImage(t, 1600, 1200)

	variants, contentType, err := Generate(src, DefaultTiers(), true)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)

	require.Len(t, variants, 4)
	assert.Equal(t, []string{"small", "medium", "large", TagOriginal},
		[]string{variants[0].Tag, variants[1].Tag, variants[2].Tag, variants[3].Tag})

	wantDims := map[string][2]int{
		"small":     {480, 360},
		"medium":    {800, 600},
		"large":     {1200, 900},
		TagOriginal: {1600, 1200},
	}
	for _, v := range variants {
		w, h := decodeDims(t, v.Data)
		want := wantDims[v.Tag]
		assert.Equal(t, want[0], w, "%s width", v.Tag)
		assert.Equal(t, want[1], h, "%s height", v.Tag)
	}
}

func TestGeneratePreservesAspectRatio(t *testing.T) {
	src := jpegImage(t, 1500, 1000)

	variants, _, err := Generate(src, DefaultTiers(), true)
	require.NoError(t, err)

	const srcRatio = 1500.0 / 1000.0
	tiers := map[string]Tier{}
	for _, tier := range DefaultTiers() {
		tiers[tier.Tag] = tier
	}

	for _, v := range variants {
		w, h := decodeDims(t, v.Data)
		assert.InDelta(t, srcRatio, float64(w)/float64(h), 0.01, "%s ratio", v.Tag)
		if tier, ok := tiers[v.Tag]; ok {
			assert.LessOrEqual(t, w, tier.MaxWidth, "%s width bound", v.Tag)
			assert.LessOrEqual(t, h, tier.MaxHeight, "%s height bound", v.Tag)
		}
	}
}

func TestGenerateNeverUpscales(t *testing.T) {
	src := jpegImage(t, 300, 200)

	variants, _, err := Generate(src, DefaultTiers(), true)
	require.NoError(t, err)

	for _, v := range variants {
		w, h := decodeDims(t, v.Data)
		assert.Equal(t, 300, w, "%s width", v.Tag)
		assert.Equal(t, 200, h, "%s height", v.Tag)
	}
}

func TestGenerateSingleVariant(t *testing.T) {
	src := jpegImage(t, 640, 480)

	variants, contentType, err := Generate(src, DefaultTiers(), false)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)

	require.Len(t, variants, 1)
	assert.Equal(t, TagOriginal, variants[0].Tag)

	w, h := decodeDims(t, variants[0].Data)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestGenerateUprightImageUnchanged(t *testing.T) {
	// PNG is lossless, so an upright source with no orientation metadata
	// must round-trip pixel-for-pixel.
	want := color.RGBA{R: 10, G: 200, B: 50, A: 255}
	src := pngImage(t, 64, 48, want)

	variants, contentType, err := Generate(src, DefaultTiers(), false)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	img, _, err := image.Decode(bytes.NewReader(variants[0].Data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	r, g, b, a := img.At(32, 24).RGBA()
	wr, wg, wb, wa := want.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{r, g, b, a})
}

func TestGenerateKeepsPNGFormat(t *testing.T) {
	src := pngImage(t, 900, 900, color.White)

	variants, contentType, err := Generate(src, DefaultTiers(), true)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	for _, v := range variants {
		_, name, err := image.DecodeConfig(bytes.NewReader(v.Data))
		require.NoError(t, err)
		assert.Equal(t, "png", name, "%s variant format", v.Tag)
	}
}

func TestGenerateRejectsCorruptInput(t *testing.T) {
	_, _, err := Generate([]byte("definitely not an image"), DefaultTiers(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	_, _, err := Generate(nil, DefaultTiers(), false)
	assert.ErrorIs(t, err, ErrDecode)
}
