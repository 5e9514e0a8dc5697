package vision

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxPixels is the decoded size above which an image is treated as
// a decompression bomb.
const DefaultMaxPixels = 178_956_970

var (
	ErrEmptyImage        = errors.New("image has no pixels")
	ErrUnsupportedSource = errors.New("content is not a supported image type")
	ErrTooManyPixels     = errors.New("image exceeds the pixel limit")
)

// sniffedTypes are the detected content types Decode accepts.
var sniffedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

const dataURIPrefix = "data:image/jpeg;base64,"

// Decode verifies the header of data, decodes it once and returns an opaque
// RGB copy with EXIF orientation applied. Images larger than maxPixels are
// refused before any raster is allocated; maxPixels <= 0 means
// DefaultMaxPixels.
func Decode(data []byte, maxPixels int64) (*image.NRGBA, error) {
	if err := VerifyHeader(data, maxPixels); err != nil {
		return nil, fmt.Errorf("verify image: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("verify image: %w", ErrEmptyImage)
	}
	return ToRGB(img), nil
}

// VerifyHeader checks that data sniffs as an allowed image type and that its
// header declares positive dimensions within maxPixels.
func VerifyHeader(data []byte, maxPixels int64) error {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if !sniffedAllowed(mimetype.Detect(data)) {
		return ErrUnsupportedSource
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ErrEmptyImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}
	return nil
}

func sniffedAllowed(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if sniffedTypes[m.String()] {
			return true
		}
	}
	return false
}

// ToRGB copies img into an NRGBA raster with every pixel made opaque.
// Colour channels are kept, alpha is dropped rather than composited.
// image/gif has already zeroed the transparent palette entry, so those
// pixels come out black.
func ToRGB(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// EncodeDataURI re-encodes img as JPEG at the given quality and wraps it in
// a data URI.
func EncodeDataURI(img image.Image, quality int) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
