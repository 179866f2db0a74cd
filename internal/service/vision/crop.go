package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"math"

	// Frame uploads arrive as JPEG or PNG.
	_ "image/png"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

// DecodeImage decodes raw upload bytes into an image.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ClampBox rounds detector coordinates to integers and clamps them so the box
// is non-degenerate and fully inside a width x height frame. Guarantees
// X2 > X1 and Y2 > Y1.
func ClampBox(box [4]float64, width, height int) models.Box {
	x1 := clampInt(int(math.Round(box[0])), 0, width-1)
	y1 := clampInt(int(math.Round(box[1])), 0, height-1)
	x2 := clampInt(int(math.Round(box[2])), x1+1, width)
	y2 := clampInt(int(math.Round(box[3])), y1+1, height)

	return models.Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Crop extracts the boxed region and re-encodes it as JPEG for the
// classifier. ok is false when the region has no area inside the image; such
// detections are dropped silently.
func Crop(img image.Image, box models.Box) (cropJPEG []byte, ok bool) {
	region := image.Rect(box.X1, box.Y1, box.X2, box.Y2).Intersect(img.Bounds())
	if region.Empty() {
		return nil, false
	}

	crop := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	draw.Draw(crop, crop.Bounds(), img, region.Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, crop, nil); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
