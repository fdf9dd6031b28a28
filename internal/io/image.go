package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// halfBlock draws the top pixel in the foreground and the bottom pixel in
// the background, so one terminal cell shows two vertically stacked pixels.
const halfBlock = "▀"

// ImageService turns downloaded thumbnails into terminal previews.
//
// ImageService is used to:
//   - Resize images to fit a maximum size (a thumbnail tile)
//   - Render images as rows of coloured half-block characters
//
// Example usage:
//
//	svc := NewImageService()
//
//	// Download a place thumbnail
//	imageData, _ := client.DownloadBytes(ctx, place.ThumbnailURL)
//
//	// 32 columns wide, 16 rows tall at most
//	preview, _ := svc.Preview(ctx, imageData, 32)
//	fmt.Println(preview)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// ResizeImage decodes data and scales it to fit within the given maximum
// dimensions.
//
// The aspect ratio is preserved. Images already smaller than the maximum
// are returned at their original size.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// A 1500x1000 image becomes 32x21
//	img, err := svc.ResizeImage(ctx, imageData, 32, 32)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) (image.Image, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("invalid maximum size %dx%d", maxWidth, maxHeight)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty image")
	}

	// Calculate new dimensions maintaining aspect ratio
	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			// Height is the limiting factor
			width = max(1, int(float64(maxHeight)*ratio))
			height = maxHeight
		} else {
			// Width is the limiting factor
			height = max(1, int(float64(maxWidth)/ratio))
			width = maxWidth
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst, nil
}

// RenderBlocks renders img as lines of half-block characters, two pixel
// rows per line. An odd last pixel row is drawn without a background.
func (s *ImageService) RenderBlocks(img image.Image) string {
	bounds := img.Bounds()
	var lines []string

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		var b strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img, x, y))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(img, x, y+1))
			}
			b.WriteString(style.Render(halfBlock))
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

// Preview resizes data to at most width columns (and width/2 rows) and
// renders it with RenderBlocks.
func (s *ImageService) Preview(ctx context.Context, data []byte, width int) (string, error) {
	img, err := s.ResizeImage(ctx, data, width, width)
	if err != nil {
		return "", err
	}
	return s.RenderBlocks(img), nil
}

func hexColor(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
