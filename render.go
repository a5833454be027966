package simplot

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/simplot/internal/ticks"
)

// Layout of the axes box inside the figure, in pixels.
const (
	padLeft   = 64
	padRight  = 16
	padTop    = 36
	padBottom = 48

	tickLen       = 4
	tickFontSize  = 10
	tickSpacingPx = 80
)

// frame maps data coordinates to canvas pixels.
type frame struct {
	x0, y0, w, h float64
	vx, vy       interval
}

func (fr frame) px(x float64) float64 { return fr.x0 + (x-fr.vx.lo)/fr.vx.span()*fr.w }
func (fr frame) py(y float64) float64 { return fr.y0 + fr.h - (y-fr.vy.lo)/fr.vy.span()*fr.h }

func newFrame(f *Figure) frame {
	a := f.axes
	return frame{
		x0: padLeft,
		y0: padTop,
		w:  math.Max(float64(f.width-padLeft-padRight), 1),
		h:  math.Max(float64(f.height-padTop-padBottom), 1),
		vx: a.viewX,
		vy: a.viewY,
	}
}

func render(dc *gg.Context, f *Figure) error {
	dc.ClearWithColor(f.background)
	fr := newFrame(f)
	a := f.axes

	tickFace, err := fontFace(tickFontSize)
	if err != nil {
		return err
	}

	setColor(dc, gg.Black)
	dc.ClearDash()
	dc.SetLineWidth(1)
	dc.DrawRectangle(fr.x0, fr.y0, fr.w, fr.h)
	if err := dc.Stroke(); err != nil {
		return drawError("frame", err)
	}
	if err := drawTicks(dc, fr, tickFace); err != nil {
		return err
	}

	dc.Push()
	dc.ClipRect(fr.x0, fr.y0, fr.w, fr.h)
	for _, l := range a.lines {
		if err := drawLine(dc, fr, l); err != nil {
			dc.Pop()
			return err
		}
	}
	dc.Pop()

	if err := drawLabels(dc, f, fr); err != nil {
		return err
	}
	if a.legend.visible {
		return drawLegend(dc, fr, a)
	}
	return nil
}

func drawError(what string, err error) error {
	return fmt.Errorf("simplot: draw %s: %w", what, err)
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func drawTicks(dc *gg.Context, fr frame, face text.Face) error {
	dc.SetFont(face)

	xt, xstep := ticks.Positions(fr.vx.lo, fr.vx.hi, max(2, int(fr.w)/tickSpacingPx))
	for _, v := range xt {
		x := fr.px(v)
		dc.DrawLine(x, fr.y0+fr.h, x, fr.y0+fr.h+tickLen)
		if err := dc.Stroke(); err != nil {
			return drawError("tick", err)
		}
		dc.DrawStringAnchored(ticks.Label(v, xstep), x, fr.y0+fr.h+tickLen+2, 0.5, 0.8)
	}

	yt, ystep := ticks.Positions(fr.vy.lo, fr.vy.hi, max(2, int(fr.h)/tickSpacingPx))
	for _, v := range yt {
		y := fr.py(v)
		dc.DrawLine(fr.x0-tickLen, y, fr.x0, y)
		if err := dc.Stroke(); err != nil {
			return drawError("tick", err)
		}
		dc.DrawStringAnchored(ticks.Label(v, ystep), fr.x0-tickLen-3, y, 1, 0.35)
	}
	return nil
}

// dashPattern scales the dash lengths of ls to the stroke width w.
func dashPattern(ls LineStyle, w float64) []float64 {
	w = math.Max(w, 1)
	switch ls {
	case LineDashed:
		return []float64{3.7 * w, 1.6 * w}
	case LineDashDot:
		return []float64{6.4 * w, 1.6 * w, 1 * w, 1.6 * w}
	case LineDotted:
		return []float64{1 * w, 1.65 * w}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func drawLine(dc *gg.Context, fr frame, l *Line) error {
	col := withAlpha(l.color, l.alpha)
	n := min(len(l.xs), len(l.ys))

	if l.style.Line != LineNone && l.width > 0 && n > 1 {
		setColor(dc, col)
		dc.SetLineWidth(l.width)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.SetDash(dashPattern(l.style.Line, l.width)...)

		penDown := false
		for i := range n {
			x, y := l.xs[i], l.ys[i]
			if !finite(x) || !finite(y) {
				penDown = false
				continue
			}
			if penDown {
				dc.LineTo(fr.px(x), fr.py(y))
			} else {
				dc.MoveTo(fr.px(x), fr.py(y))
				penDown = true
			}
		}
		if err := dc.Stroke(); err != nil {
			return drawError("line", err)
		}
		dc.ClearDash()
	}

	if l.style.Marker == MarkerNone || l.markerSize == 0 {
		return nil
	}
	setColor(dc, col)
	for i := range n {
		x, y := l.xs[i], l.ys[i]
		if !finite(x) || !finite(y) {
			continue
		}
		if err := drawMarker(dc, l.style.Marker, fr.px(x), fr.py(y), l.markerSize); err != nil {
			return err
		}
	}
	return nil
}

// regular appends the vertices of a regular n-gon of radius r centered
// on (x, y), starting at angle a0.
func regular(dc *gg.Context, x, y, r float64, n int, a0 float64) {
	for i := range n {
		a := a0 + 2*math.Pi*float64(i)/float64(n)
		px, py := x+r*math.Cos(a), y+r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
}

func drawMarker(dc *gg.Context, m Marker, x, y, size float64) error {
	r := size / 2
	up := -math.Pi / 2

	filled := true
	switch m {
	case MarkerCircle:
		dc.DrawCircle(x, y, r)
	case MarkerPoint:
		dc.DrawCircle(x, y, r/2)
	case MarkerPixel:
		dc.DrawRectangle(x-0.5, y-0.5, 1, 1)
	case MarkerSquare:
		dc.DrawRectangle(x-r, y-r, size, size)
	case MarkerDiamond:
		regular(dc, x, y, r*1.2, 4, up)
	case MarkerThinDiamond:
		dc.MoveTo(x, y-r)
		dc.LineTo(x+0.6*r, y)
		dc.LineTo(x, y+r)
		dc.LineTo(x-0.6*r, y)
		dc.ClosePath()
	case MarkerTriangleUp:
		regular(dc, x, y, r*1.2, 3, up)
	case MarkerTriangleDown:
		regular(dc, x, y, r*1.2, 3, math.Pi/2)
	case MarkerTriangleLeft:
		regular(dc, x, y, r*1.2, 3, math.Pi)
	case MarkerTriangleRight:
		regular(dc, x, y, r*1.2, 3, 0)
	case MarkerPentagon:
		regular(dc, x, y, r*1.1, 5, up)
	case MarkerHexagon:
		regular(dc, x, y, r*1.1, 6, up)
	case MarkerStar:
		for i := range 10 {
			rr := r * 1.3
			if i%2 == 1 {
				rr *= 0.4
			}
			a := up + math.Pi*float64(i)/5
			if i == 0 {
				dc.MoveTo(x+rr*math.Cos(a), y+rr*math.Sin(a))
			} else {
				dc.LineTo(x+rr*math.Cos(a), y+rr*math.Sin(a))
			}
		}
		dc.ClosePath()
	default:
		filled = false
	}
	if filled {
		if err := dc.Fill(); err != nil {
			return drawError("marker", err)
		}
		return nil
	}

	dc.SetLineWidth(math.Max(1, size/6))
	switch m {
	case MarkerPlus:
		dc.DrawLine(x-r, y, x+r, y)
		dc.DrawLine(x, y-r, x, y+r)
	case MarkerX:
		dc.DrawLine(x-r, y-r, x+r, y+r)
		dc.DrawLine(x-r, y+r, x+r, y-r)
	case MarkerVLine:
		dc.DrawLine(x, y-r, x, y+r)
	case MarkerHLine:
		dc.DrawLine(x-r, y, x+r, y)
	default:
		return nil
	}
	if err := dc.Stroke(); err != nil {
		return drawError("marker", err)
	}
	return nil
}

func drawLabels(dc *gg.Context, f *Figure, fr frame) error {
	a := f.axes
	if t := a.title; t.S != "" {
		face, err := fontFace(t.Size)
		if err != nil {
			return err
		}
		dc.SetFont(face)
		setColor(dc, t.Color)
		dc.DrawStringAnchored(t.S, fr.x0+fr.w/2, fr.y0/2, 0.5, 0.35)
	}
	if t := a.xlabel; t.S != "" {
		face, err := fontFace(t.Size)
		if err != nil {
			return err
		}
		dc.SetFont(face)
		setColor(dc, t.Color)
		dc.DrawStringAnchored(t.S, fr.x0+fr.w/2, float64(f.height)-6, 0.5, 0)
	}
	if t := a.ylabel; t.S != "" {
		face, err := fontFace(t.Size)
		if err != nil {
			return err
		}
		drawVertical(dc, t, face, 4, fr.y0+fr.h/2)
	}
	return nil
}

// drawVertical draws t rotated a quarter turn counter-clockwise, with its
// left edge at x and centered vertically on cy. Text is rasterized
// upright on a scratch canvas which is then rotated pixel by pixel.
func drawVertical(dc *gg.Context, t Text, face text.Face, x, cy float64) {
	dc.SetFont(face)
	tw, th := dc.MeasureString(t.S)
	sw, sh := int(math.Ceil(tw))+2, int(math.Ceil(th))+2

	scratch := gg.NewContext(sw, sh)
	defer func() { _ = scratch.Close() }()
	scratch.SetFont(face)
	setColor(scratch, t.Color)
	scratch.DrawString(t.S, 1, 1+0.8*th)

	src := scratch.Image()
	b := src.Bounds()
	rot := image.NewNRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			rot.Set(sy-b.Min.Y, b.Max.X-1-sx, src.At(sx, sy))
		}
	}
	dc.DrawImage(gg.ImageBufFromImage(rot), x, cy-float64(b.Dx())/2)
}

func drawLegend(dc *gg.Context, fr frame, a *Axes) error {
	var entries []*Line
	for _, l := range a.lines {
		if l.label != "" {
			entries = append(entries, l)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	face, err := fontFace(tickFontSize)
	if err != nil {
		return err
	}
	dc.SetFont(face)

	const (
		inset  = 8.0
		rowH   = 16.0
		sample = 24.0
	)
	textW := 0.0
	for _, l := range entries {
		w, _ := dc.MeasureString(l.label)
		textW = math.Max(textW, w)
	}
	bw := inset + sample + 6 + textW + inset
	bh := 6 + rowH*float64(len(entries))

	bx, by := fr.x0+fr.w-bw-inset, fr.y0+inset
	switch a.legend.loc {
	case UpperLeft:
		bx = fr.x0 + inset
	case LowerLeft:
		bx, by = fr.x0+inset, fr.y0+fr.h-bh-inset
	case LowerRight:
		by = fr.y0 + fr.h - bh - inset
	}

	setColor(dc, gg.RGBA{R: 1, G: 1, B: 1, A: 0.8})
	dc.DrawRectangle(bx, by, bw, bh)
	if err := dc.Fill(); err != nil {
		return drawError("legend", err)
	}
	setColor(dc, gg.RGB(0.8, 0.8, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRectangle(bx, by, bw, bh)
	if err := dc.Stroke(); err != nil {
		return drawError("legend", err)
	}

	for i, l := range entries {
		ry := by + 3 + rowH*(float64(i)+0.5)
		col := withAlpha(l.color, l.alpha)
		if l.style.Line != LineNone && l.width > 0 {
			setColor(dc, col)
			dc.SetLineWidth(l.width)
			dc.SetDash(dashPattern(l.style.Line, l.width)...)
			dc.DrawLine(bx+inset, ry, bx+inset+sample, ry)
			if err := dc.Stroke(); err != nil {
				return drawError("legend", err)
			}
			dc.ClearDash()
		}
		if l.style.Marker != MarkerNone && l.markerSize > 0 {
			setColor(dc, col)
			if err := drawMarker(dc, l.style.Marker, bx+inset+sample/2, ry, l.markerSize); err != nil {
				return err
			}
		}
		setColor(dc, gg.Black)
		dc.DrawStringAnchored(l.label, bx+inset+sample+6, ry, 0, 0.35)
	}
	return nil
}
