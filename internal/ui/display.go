package ui

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hotview/internal/histogram"
	"hotview/internal/viewer"
)

const (
	histWidth  = histogram.Bins
	histHeight = 128
	margin     = 10
)

var (
	windowBackground = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	histBackground   = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// display implements viewer.Renderer on a Fyne window: the image on a
// grey canvas, with the exposure histogram and metadata block laid
// over the top-right corner.
type display struct {
	app   fyne.App
	win   fyne.Window
	image *canvas.Image
	hist  *canvas.Raster
	label *widget.Label

	width  float32
	height float32
	counts [histogram.Bins]int
}

func newDisplay(a fyne.App, win fyne.Window, width, height int) *display {
	d := &display{
		app:    a,
		win:    win,
		width:  float32(width),
		height: float32(height),
	}

	background := canvas.NewRectangle(windowBackground)
	background.Resize(fyne.NewSize(d.width, d.height))

	d.image = canvas.NewImageFromImage(nil)
	d.image.FillMode = canvas.ImageFillContain
	d.image.Hide()

	d.hist = canvas.NewRaster(d.drawHistogram)
	d.hist.Hide()

	d.label = widget.NewLabel("")
	d.label.TextStyle = fyne.TextStyle{Monospace: true}
	d.label.Alignment = fyne.TextAlignTrailing
	d.label.Hide()

	win.SetContent(container.NewWithoutLayout(background, d.image, d.hist, d.label))
	return d
}

// Render puts one frame on screen.
func (d *display) Render(f viewer.Frame) {
	d.win.SetTitle(f.Title)

	bounds := f.Image.Bounds()
	size := fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))
	d.image.Image = f.Image
	d.image.Resize(size)
	if f.Centre {
		d.image.Move(fyne.NewPos((d.width-size.Width)/2, (d.height-size.Height)/2))
	} else {
		d.image.Move(fyne.NewPos(0, 0))
	}
	d.image.Show()
	d.image.Refresh()

	if f.Overlay != nil {
		d.counts = f.Overlay.Counts
		d.hist.Resize(fyne.NewSize(histWidth, histHeight))
		d.hist.Move(fyne.NewPos(d.width-margin-histWidth, margin))
		d.hist.Show()
		d.hist.Refresh()

		d.label.SetText(f.Overlay.Text)
		min := d.label.MinSize()
		d.label.Resize(min)
		d.label.Move(fyne.NewPos(d.width-margin-min.Width, margin+histHeight+20))
		d.label.Show()
	} else {
		d.hist.Hide()
		d.label.Hide()
	}
}

// Clear blanks the window, for when the image set has run dry.
func (d *display) Clear() {
	d.win.SetTitle("Image Viewer")
	d.image.Hide()
	d.hist.Hide()
	d.label.Hide()
}

// Bell rings the terminal bell.
func (d *display) Bell() { fmt.Print("\a") }

// Quit shuts the application down.
func (d *display) Quit() { d.app.Quit() }

// drawHistogram renders the luminance counts as white columns,
// clipped so a few huge bins do not dwarf the rest.
func (d *display) drawHistogram(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, histBackground)
		}
	}
	heights, _ := histogram.Scale(d.counts, float64(h))
	for x := 0; x < w && x < histogram.Bins; x++ {
		top := h - int(heights[x])
		for y := h - 1; y >= top && y >= 0; y-- {
			img.Set(x, y, color.White)
		}
	}
	return img
}
