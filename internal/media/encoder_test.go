package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, dir string, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	path := filepath.Join(dir, "receipt.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestEncode_ResizesLargeImages(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), 3000, 1500)

	payload, err := Encode(path)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", payload.MIMEType)
	assert.True(t, payload.IsImage())

	decoded, err := jpeg.Decode(bytes.NewReader(payload.Data))
	require.NoError(t, err)
	bounds := decoded.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 1024)
	assert.LessOrEqual(t, bounds.Dy(), 1024)
	// Aspect ratio survives the downscale.
	assert.Equal(t, 1024, bounds.Dx())
	assert.Equal(t, 512, bounds.Dy())
}

func TestEncode_SmallImageKeepsDimensions(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), 640, 480)

	payload, err := Encode(path)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", payload.MIMEType)

	decoded, err := jpeg.Decode(bytes.NewReader(payload.Data))
	require.NoError(t, err)
	assert.Equal(t, 640, decoded.Bounds().Dx())
	assert.Equal(t, 480, decoded.Bounds().Dy())
}

func TestEncode_DocumentPassThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.pdf")
	content := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	payload, err := Encode(path)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", payload.MIMEType)
	assert.False(t, payload.IsImage())
	// Statements are not re-encoded; layout fidelity matters.
	assert.Equal(t, content, payload.Data)
}

func TestEncode_MissingFile(t *testing.T) {
	_, err := Encode(filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)

	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestEncode_CorruptImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	// Valid PNG magic so MIME sniffing says image, but truncated body.
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nnonsense"), 0o600))

	_, err := Encode(path)
	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestPayloadBase64(t *testing.T) {
	p := Payload{MIMEType: "application/pdf", Data: []byte("hello")}
	assert.Equal(t, "aGVsbG8=", p.Base64())
}
