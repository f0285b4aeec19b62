// Package media converts user-selected files into model-consumable payloads.
package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding
	"net/http"
	"os"
	"strings"

	"golang.org/x/image/draw"
)

const (
	// maxDimension caps either side of an image payload. Receipts far past
	// this size only add latency, not legibility.
	maxDimension = 1024
	// jpegQuality is the fixed lossy quality for re-encoded images.
	jpegQuality = 80
)

// Payload is an encoded media item ready to attach to an extraction request.
type Payload struct {
	// MIMEType classifies the encoded bytes (image/jpeg, application/pdf, ...).
	MIMEType string
	// Data holds the encoded bytes.
	Data []byte
}

// Base64 returns the binary-safe textual encoding of the payload.
func (p Payload) Base64() string {
	return base64.StdEncoding.EncodeToString(p.Data)
}

// IsImage reports whether the payload carries image data.
func (p Payload) IsImage() bool {
	return strings.HasPrefix(p.MIMEType, "image/")
}

// ReadError indicates the input file could not be read or decoded. It is
// fatal to the current ingestion: the caller must surface it and never
// attempt extraction with a partial payload.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unreadable media %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Encode reads the file at path and returns its extraction payload. Images
// are downscaled so neither dimension exceeds maxDimension (preserving
// aspect ratio) and re-encoded as JPEG at a fixed quality; document files
// such as multi-page PDF statements pass through unmodified, since layout
// fidelity matters for multi-row extraction.
func Encode(path string) (Payload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, &ReadError{Path: path, Err: err}
	}
	if len(raw) == 0 {
		return Payload{}, &ReadError{Path: path, Err: fmt.Errorf("empty file")}
	}

	mimeType := sniffMIME(raw)

	if !strings.HasPrefix(mimeType, "image/") {
		return Payload{MIMEType: mimeType, Data: raw}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return Payload{}, &ReadError{Path: path, Err: fmt.Errorf("decode image: %w", err)}
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Payload{}, &ReadError{Path: path, Err: fmt.Errorf("encode jpeg: %w", err)}
	}

	return Payload{MIMEType: "image/jpeg", Data: buf.Bytes()}, nil
}

// sniffMIME classifies content from its leading bytes.
func sniffMIME(raw []byte) string {
	head := raw
	if len(head) > 512 {
		head = head[:512]
	}
	mimeType := http.DetectContentType(head)
	// DetectContentType returns "text/plain; charset=utf-8" style values;
	// only the media type matters here.
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return mimeType
}

// downscale shrinks img so neither dimension exceeds maxDimension,
// preserving aspect ratio. Images already within bounds are returned as-is.
func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}

	scale := float64(maxDimension) / float64(w)
	if h > w {
		scale = float64(maxDimension) / float64(h)
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
