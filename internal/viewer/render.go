package viewer

import (
	"image"

	"hotview/internal/histogram"
	"hotview/internal/service"
)

// Overlay is the exposure display for one image: the raw luminance
// counts and the formatted metadata block. The renderer decides how
// tall to draw the bars.
type Overlay struct {
	Counts [histogram.Bins]int
	Text   string
}

// Frame is one complete display state handed to the renderer.
type Frame struct {
	Image   image.Image
	Width   int // original image dimensions, for the title
	Height  int
	Path    string
	Title   string
	Centre  bool
	Overlay *Overlay // nil when the overlay is switched off
}

// Renderer puts frames on screen. The Fyne shell implements this; the
// tests use a recording fake.
type Renderer interface {
	Render(Frame)
	Clear()
	Bell()
	Quit()
}

// Loader prepares an image file for display. ImageService implements
// this for real files.
type Loader interface {
	Load(path string, maxW, maxH int) (*service.LoadedImage, error)
}
