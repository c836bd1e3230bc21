package viewer

import (
	"fmt"
	"path/filepath"
	"time"

	"hotview/internal/histogram"
	"hotview/internal/metadata"
	"hotview/internal/scan"
	"hotview/internal/slideshow"
)

// Empty is the index value meaning no image is on display.
const Empty = -1

// Scanner yields candidate image paths on each poll.
type Scanner interface {
	Scan() ([]string, error)
}

// SkipList records paths that failed to decode so later scans leave
// them alone.
type SkipList interface {
	Add(path string) error
	Contains(path string) bool
	Clear() error
}

// Deps are the collaborators a Controller drives.
type Deps struct {
	Set      *scan.ImageSet
	Scanner  Scanner
	Skips    SkipList
	Store    *metadata.Store
	Show     *slideshow.Ticker
	Renderer Renderer
	Loader   Loader
	Logger   scan.LoggerFunc
}

// Options hold the initial viewing state.
type Options struct {
	Width   int
	Height  int
	Filter  byte // minimum rating digit, 0 for no filter
	Centre  bool
	Overlay bool
	Verbose bool
	Bell    bool
}

// Controller owns the navigation state: which image is current, which
// way the user is moving, and what the periodic poll discovered. All
// methods must be called from the one goroutine that runs the event
// loop.
type Controller struct {
	set      *scan.ImageSet
	scanner  Scanner
	skips    SkipList
	store    *metadata.Store
	show     *slideshow.Ticker
	renderer Renderer
	loader   Loader
	logger   scan.LoggerFunc

	width, height int
	filter        byte
	centre        bool
	overlay       bool
	verbose       bool
	update        bool
	bell          bool

	index int
	now   func() time.Time
}

// New creates a Controller showing nothing. Updating starts enabled;
// the first Tick populates the set.
func New(deps Deps, opts Options) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = func(string) {}
	}
	return &Controller{
		set:      deps.Set,
		scanner:  deps.Scanner,
		skips:    deps.Skips,
		store:    deps.Store,
		show:     deps.Show,
		renderer: deps.Renderer,
		loader:   deps.Loader,
		logger:   logger,
		width:    opts.Width,
		height:   opts.Height,
		filter:   opts.Filter,
		centre:   opts.Centre,
		overlay:  opts.Overlay,
		verbose:  opts.Verbose,
		bell:     opts.Bell,
		update:   true,
		index:    Empty,
	}
}

// Index returns the current image index, or Empty.
func (c *Controller) Index() int { return c.index }

// Filter returns the active rating filter digit, 0 when unfiltered.
func (c *Controller) Filter() byte { return c.filter }

// Goto moves to the image at target, wrapping at both ends. When a
// rating filter is set it steps on by delta until an image qualifies;
// if none does after a full cycle it settles back where it started.
func (c *Controller) Goto(target, delta int) {
	n := c.set.Len()
	if n == 0 {
		c.index = Empty
		c.renderer.Clear()
		return
	}
	c.index = wrap(target, n)
	if c.filter != 0 {
		for i := 0; i < n; i++ {
			if c.ratingAt(c.index) >= string(c.filter) {
				break
			}
			c.index = wrap(c.index+delta, n)
		}
	}
	c.display()
}

// Next moves to the following image, wrapping at the end.
func (c *Controller) Next() { c.Goto(c.index+1, 1) }

// Previous moves to the preceding image, wrapping at the start.
func (c *Controller) Previous() { c.Goto(c.index-1, -1) }

// First moves to the first image in the set.
func (c *Controller) First() { c.Goto(0, 1) }

// Last moves to the final image in the set.
func (c *Controller) Last() { c.Goto(c.set.Len()-1, -1) }

// Tick runs one poll cycle: honor a pending rescan, scan the folder,
// merge what appeared, jump to the first new image, and advance the
// slideshow. Called every 250ms by the shell; a no-op while updating
// is switched off.
func (c *Controller) Tick() {
	if !c.update {
		return
	}

	if c.set.TakeRescan() {
		c.set.Clear()
		c.index = Empty
	}

	paths, err := c.scanner.Scan()
	if err != nil {
		c.logger(fmt.Sprintf("scan failed: %v", err))
	}

	batch := c.set.Merge(paths, c.skips)
	if len(batch) > 0 {
		c.index = c.set.IndexOf(batch[0])
		c.display()
		c.show.Stop()
		if c.bell {
			c.renderer.Bell()
		}
	}

	if c.show.Tick() {
		c.Next()
	}
}

// Rate records a rating digit against the current image and saves it.
func (c *Controller) Rate(digit byte) {
	if c.index == Empty {
		return
	}
	name := filepath.Base(c.set.Path(c.index))
	if err := c.store.SetRating(name, string(digit)); err != nil {
		c.logger(fmt.Sprintf("failed to save rating: %v", err))
	}
	if c.overlay {
		c.display()
	}
}

// Annotate records notes against the current image and saves them. An
// empty reply leaves the existing notes alone.
func (c *Controller) Annotate(text string) {
	if c.index == Empty || text == "" {
		return
	}
	name := filepath.Base(c.set.Path(c.index))
	if err := c.store.SetNotes(name, text); err != nil {
		c.logger(fmt.Sprintf("failed to save notes: %v", err))
	}
	if c.overlay {
		c.display()
	}
}

// Notes returns the notes for the current image, for seeding the
// notes dialog.
func (c *Controller) Notes() string {
	if c.index == Empty {
		return ""
	}
	return c.store.Get(filepath.Base(c.set.Path(c.index))).Notes
}

// HandleEvent dispatches one user action.
func (c *Controller) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventQuit:
		c.renderer.Quit()
	case EventNext:
		c.Next()
	case EventPrevious:
		c.Previous()
	case EventFirst:
		c.First()
	case EventLast:
		c.Last()
	case EventToggleSlideshow:
		c.show.Toggle()
	case EventSpeedUp:
		c.show.SpeedUp()
	case EventSlowDown:
		c.show.SlowDown()
	case EventToggleCentre:
		c.centre = !c.centre
		c.display()
	case EventToggleOverlay:
		c.overlay = !c.overlay
		c.display()
	case EventToggleInfo:
		c.verbose = !c.verbose
		if c.overlay {
			c.display()
		}
	case EventToggleUpdate:
		c.update = !c.update
	case EventClearSkips:
		if err := c.skips.Clear(); err != nil {
			c.logger(fmt.Sprintf("failed to clear skip list: %v", err))
		}
	case EventRate:
		c.Rate(ev.Digit)
	case EventSetFilter:
		c.filter = ev.Digit
	case EventAnnotate:
		c.Annotate(ev.Text)
	}
}

// display loads and renders the current image. An image that fails to
// decode goes on the skip list and out of the set, and we try again
// with whatever slid into its place, until something renders or the
// set runs dry.
func (c *Controller) display() {
	for {
		if c.index == Empty || c.set.Len() == 0 {
			c.index = Empty
			c.renderer.Clear()
			return
		}

		path := c.set.Path(c.index)
		loaded, err := c.loader.Load(path, c.width, c.height)
		if err != nil {
			c.logger(fmt.Sprintf("warning: skipping %s - %v", path, err))
			if err := c.skips.Add(path); err != nil {
				c.logger(fmt.Sprintf("failed to record skip: %v", err))
			}
			c.set.RemoveAt(c.index)
			if c.index >= c.set.Len() {
				c.index = 0
			}
			continue
		}

		frame := Frame{
			Image:  loaded.Image,
			Width:  loaded.Width,
			Height: loaded.Height,
			Path:   path,
			Title:  fmt.Sprintf("Image Viewer - %dx%d - %s", loaded.Width, loaded.Height, path),
			Centre: c.centre,
		}
		if c.overlay {
			name := filepath.Base(path)
			text := histogram.BuildOverlay(loaded.Exif, c.store.Get(name), name, c.timeNow(), c.verbose)
			frame.Overlay = &Overlay{Counts: loaded.Histogram, Text: text}
		}
		c.renderer.Render(frame)
		return
	}
}

func (c *Controller) ratingAt(i int) string {
	return c.store.Get(filepath.Base(c.set.Path(i))).Rating
}

func (c *Controller) timeNow() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

// wrap is a floored modulo so negative targets wrap to the far end.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
