package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"

	// Register decoders for the formats scans arrive in.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"
)

// DecodeBase64Image decodes a base64-encoded raster image (optionally a data
// URL) into an NRGBA image with zero-origin bounds. The returned format is
// the detected source encoding ("png", "jpeg", "gif", "webp").
//
// Normalizing to NRGBA here means the rest of the pipeline sees one channel
// layout no matter what the source format stored.
func DecodeBase64Image(input string) (*image.NRGBA, string, error) {
	raw := stripDataPrefix(input)

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}

	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	return imaging.Clone(img), format, nil
}

// Decode reads an image from the reader and returns it along with the
// detected format string.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// EncodePNGToBase64 encodes an image as PNG and returns the base64 string.
// PNG is lossless, so decoding the result reproduces the pixels exactly.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// stripDataPrefix removes a "data:image/...;base64," prefix if present, so
// callers can paste data URLs straight from a browser.
func stripDataPrefix(input string) string {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "data:") {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return input
}
