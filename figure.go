package simplot

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
)

// Figure is a rendering surface: a canvas of fixed pixel size holding one
// Axes. Figures are compared by identity.
//
// A Figure is not safe for concurrent use.
type Figure struct {
	width      int
	height     int
	background gg.RGBA
	axes       *Axes

	dc    *gg.Context
	draws int
}

// NewFigure creates a figure. The canvas is allocated on the first Draw.
//
// Example:
//
//	fig := simplot.NewFigure(simplot.WithSize(800, 600))
//	defer fig.Close()
func NewFigure(opts ...FigureOption) *Figure {
	cfg := defaultFigureConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	f := &Figure{
		width:      cfg.width,
		height:     cfg.height,
		background: cfg.background,
		axes:       newAxes(),
	}
	if cfg.title != "" {
		f.axes.SetTitle(cfg.title)
	}
	return f
}

// Axes returns the figure's axes.
func (f *Figure) Axes() *Axes { return f.axes }

// Width returns the figure width in pixels.
func (f *Figure) Width() int { return f.width }

// Height returns the figure height in pixels.
func (f *Figure) Height() int { return f.height }

// Background returns the background color.
func (f *Figure) Background() gg.RGBA { return f.background }

// Draws returns how many times the figure has been rendered.
func (f *Figure) Draws() int { return f.draws }

func (f *Figure) canvas() *gg.Context {
	if f.dc == nil {
		f.dc = gg.NewContext(f.width, f.height)
	}
	return f.dc
}

// Draw renders the figure onto its canvas.
func (f *Figure) Draw() error {
	if err := render(f.canvas(), f); err != nil {
		return err
	}
	f.draws++
	Logger().Debug("figure drawn", "draws", f.draws, "lines", len(f.axes.lines))
	return nil
}

// Image renders the figure and returns the canvas image.
func (f *Figure) Image() (image.Image, error) {
	if err := f.Draw(); err != nil {
		return nil, err
	}
	return f.dc.Image(), nil
}

// WritePNG renders the figure and encodes it as PNG to w.
func (f *Figure) WritePNG(w io.Writer) error {
	if err := f.Draw(); err != nil {
		return err
	}
	return f.dc.EncodePNG(w)
}

// WriteJPEG renders the figure and encodes it as JPEG to w.
func (f *Figure) WriteJPEG(w io.Writer, quality int) error {
	if err := f.Draw(); err != nil {
		return err
	}
	return f.dc.EncodeJPEG(w, quality)
}

// Save renders the figure to path. The format follows the extension:
// .png, .jpg or .jpeg.
func (f *Figure) Save(path string) (err error) {
	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = f.WritePNG
	case ".jpg", ".jpeg":
		encode = func(w io.Writer) error { return f.WriteJPEG(w, 90) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	// #nosec G304 -- output path is provided by the user
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("simplot: create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("simplot: close %s: %w", path, cerr)
		}
	}()

	if err := encode(out); err != nil {
		return fmt.Errorf("simplot: encode %s: %w", path, err)
	}
	Logger().Info("figure saved", "path", path, "width", f.width, "height", f.height)
	return nil
}

// Close releases the canvas. The figure can still be drawn afterwards,
// which allocates a new canvas.
func (f *Figure) Close() error {
	if f.dc == nil {
		return nil
	}
	err := f.dc.Close()
	f.dc = nil
	return err
}
