package service

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	"hotview/internal/exifinfo"
	"hotview/internal/histogram"
)

// LoadedImage is everything the viewer needs to put one image on
// screen: the pre-scaled pixels, the original dimensions for the
// title, the formatted metadata, and the luminance histogram.
type LoadedImage struct {
	Image     image.Image
	Width     int
	Height    int
	Exif      map[string]string
	Histogram [histogram.Bins]int
}

// ImageService loads and prepares images for display.
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Load opens, orientation-corrects and decodes the image at path,
// scales it so its longer dimension fits maxW x maxH while keeping
// the aspect ratio, and gathers metadata and histogram. A failure
// here marks the path as undecodable to the caller.
func (is *ImageService) Load(path string, maxW, maxH int) (*LoadedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	exifData := exifinfo.Extract(f)
	f.Close()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var scaled image.Image = img
	if maxW > 0 && maxH > 0 {
		// The dimension that needs scaling most gives the factor, so
		// small images are enlarged to fill the viewport too.
		wScale := float64(width) / float64(maxW)
		hScale := float64(height) / float64(maxH)
		scale := wScale
		if hScale > scale {
			scale = hScale
		}
		if scale > 0 {
			scaled = imaging.Resize(img,
				int(float64(width)/scale), int(float64(height)/scale), imaging.Lanczos)
		}
	}

	return &LoadedImage{
		Image:     scaled,
		Width:     width,
		Height:    height,
		Exif:      exifData,
		Histogram: histogram.Luminance(scaled),
	}, nil
}
