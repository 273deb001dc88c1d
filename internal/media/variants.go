package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// TagOriginal is the implicit variant tag for the full-resolution,
// orientation-corrected image. It is never downscaled.
const TagOriginal = "original"

// ErrDecode is returned when the uploaded bytes are not a readable image.
var ErrDecode = errors.New("media: not a decodable image")

// Tier is a named size class with a maximum bounding box. Resizing fits the
// image proportionally inside the box and never upscales.
type Tier struct {
	Tag       string
	MaxWidth  int
	MaxHeight int
}

// DefaultTiers returns the standard responsive size classes, smallest first.
func DefaultTiers() []Tier {
	return []Tier{
		{Tag: "small", MaxWidth: 480, MaxHeight: 480},
		{Tag: "medium", MaxWidth: 800, MaxHeight: 800},
		{Tag: "large", MaxWidth: 1200, MaxHeight: 1200},
	}
}

// Variant is one encoded derivative of an uploaded image.
type Variant struct {
	Tag  string
	Data []byte
}

const jpegQuality = 85

// Generate decodes raw, applies any embedded EXIF orientation exactly once,
// and produces the encoded variants. With responsive=false only the
// orientation-corrected original is returned; with responsive=true one
// variant per tier (in tier order) plus the original. The second return
// value is the content type of the encoded bytes. Variants are re-encoded
// in the source format when it is detectable, otherwise JPEG.
//
// Generate is all-or-nothing: any decode or encode failure returns an error
// and no variants.
func Generate(raw []byte, tiers []Tier, responsive bool) ([]Variant, string, error) {
	_, formatName, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrDecode, err)
	}
	format := encodeFormat(formatName)

	// Orientation correction happens here, before any resize, so every
	// derivative inherits upright pixel data.
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrDecode, err)
	}

	contentType := formatContentType(format)

	if !responsive {
		data, err := encode(img, format)
		if err != nil {
			return nil, "", err
		}
		return []Variant{{Tag: TagOriginal, Data: data}}, contentType, nil
	}

	variants := make([]Variant, 0, len(tiers)+1)
	for _, t := range tiers {
		// Fit preserves aspect ratio and leaves smaller sources untouched.
		resized := imaging.Fit(img, t.MaxWidth, t.MaxHeight, imaging.Lanczos)
		data, err := encode(resized, format)
		if err != nil {
			return nil, "", err
		}
		variants = append(variants, Variant{Tag: t.Tag, Data: data})
	}

	data, err := encode(img, format)
	if err != nil {
		return nil, "", err
	}
	variants = append(variants, Variant{Tag: TagOriginal, Data: data})

	return variants, contentType, nil
}

func encode(img image.Image, format imaging.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode %s variant: %w", format, err)
	}
	return buf.Bytes(), nil
}

// encodeFormat maps a detected format name to the format variants are
// encoded in. Formats we cannot encode fall back to JPEG.
func encodeFormat(name string) imaging.Format {
	switch name {
	case "jpeg":
		return imaging.JPEG
	case "png":
		return imaging.PNG
	case "gif":
		return imaging.GIF
	case "bmp":
		return imaging.BMP
	case "tiff":
		return imaging.TIFF
	default:
		return imaging.JPEG
	}
}

func formatContentType(format imaging.Format) string {
	switch format {
	case imaging.PNG:
		return "image/png"
	case imaging.GIF:
		return "image/gif"
	case imaging.BMP:
		return "image/bmp"
	case imaging.TIFF:
		return "image/tiff"
	default:
		return "image/jpeg"
	}
}
