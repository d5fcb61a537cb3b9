package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	// Register decoders for the screenshot formats customers upload.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"
)

// imageTypeNames maps stdlib decoder format names onto fpdf image types.
var imageTypeNames = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

// ImageToPDF wraps a base64-encoded image into a single-page PDF sized to
// the image. Accepts a bare base64 payload or a full data URL.
func (r *Renderer) ImageToPDF(base64Image string) ([]byte, error) {
	if idx := strings.Index(base64Image, ","); idx >= 0 && strings.HasPrefix(base64Image, "data:") {
		base64Image = base64Image[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	imageType, ok := imageTypeNames[format]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: float64(cfg.Width), Ht: float64(cfg.Height)},
	})
	doc.AddPage()

	doc.RegisterImageOptionsReader("screenshot",
		fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(raw))
	doc.ImageOptions("screenshot", 0, 0,
		float64(cfg.Width), float64(cfg.Height), false,
		fpdf.ImageOptions{ImageType: imageType}, 0, "")

	var buf bytes.Buffer
	if err = doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render screenshot pdf: %w", err)
	}
	return buf.Bytes(), nil
}
