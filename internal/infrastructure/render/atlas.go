// Package render draws animation frames from a sprite atlas with ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rotisserie/eris"
)

// Atlas is a sprite sheet of equally sized frames laid out row by row
type Atlas struct {
	sheet  *ebiten.Image
	frameW int
	frameH int
	cols   int
	count  int
}

// NewAtlas slices sheet into frameW x frameH frames
func NewAtlas(sheet *ebiten.Image, frameW, frameH int) (*Atlas, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, eris.Errorf("invalid frame size %dx%d", frameW, frameH)
	}
	b := sheet.Bounds()
	cols, rows := b.Dx()/frameW, b.Dy()/frameH
	if cols == 0 || rows == 0 {
		return nil, eris.Errorf("sheet %dx%d smaller than one %dx%d frame", b.Dx(), b.Dy(), frameW, frameH)
	}
	return &Atlas{
		sheet:  sheet,
		frameW: frameW,
		frameH: frameH,
		cols:   cols,
		count:  cols * rows,
	}, nil
}

// Len returns the number of frames
func (a *Atlas) Len() int { return a.count }

// FrameSize returns the size of one frame in pixels
func (a *Atlas) FrameSize() (int, int) { return a.frameW, a.frameH }

// FrameRect returns the sheet rectangle of frame index
func (a *Atlas) FrameRect(index int) (image.Rectangle, bool) {
	if index < 0 || index >= a.count {
		return image.Rectangle{}, false
	}
	x := (index % a.cols) * a.frameW
	y := (index / a.cols) * a.frameH
	return image.Rect(x, y, x+a.frameW, y+a.frameH), true
}

// Frame returns frame index as a sub-image, nil if out of range
func (a *Atlas) Frame(index int) *ebiten.Image {
	r, ok := a.FrameRect(index)
	if !ok {
		return nil
	}
	return a.sheet.SubImage(r).(*ebiten.Image)
}

// Draw draws frame index at (x, y) scaled by scale, mirrored when flip is set.
// Out of range indices draw nothing.
func (a *Atlas) Draw(dst *ebiten.Image, index int, x, y, scale float64, flip bool) {
	frame := a.Frame(index)
	if frame == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(a.frameW), 0)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(frame, op)
}

// NewPlaceholderAtlas draws count procedurally colored spider frames in a
// single row, for running without sprite assets
func NewPlaceholderAtlas(frameW, frameH, count int) *Atlas {
	sheet := ebiten.NewImage(frameW*count, frameH)
	for i := 0; i < count; i++ {
		drawPlaceholder(sheet, i, float64(i*frameW), float64(frameW), float64(frameH))
	}
	return &Atlas{sheet: sheet, frameW: frameW, frameH: frameH, cols: count, count: count}
}

// PlaceholderColor returns the body color of placeholder frame index
func PlaceholderColor(index int) color.RGBA {
	palette := []color.RGBA{
		{100, 200, 100, 255},
		{100, 160, 220, 255},
		{220, 180, 90, 255},
		{200, 100, 200, 255},
		{220, 90, 90, 255},
		{120, 220, 210, 255},
	}
	return palette[index%len(palette)]
}

func drawPlaceholder(sheet *ebiten.Image, index int, x, w, h float64) {
	body := PlaceholderColor(index)
	legs := color.RGBA{40, 40, 40, 255}

	// legs swing with the frame index so consecutive frames differ
	swing := float64(index%4) - 1.5
	for leg := 0; leg < 4; leg++ {
		lx := x + w*0.15 + float64(leg)*w*0.2 + swing
		ebitenutil.DrawRect(sheet, lx, h*0.55, 2, h*0.4, legs)
	}
	ebitenutil.DrawRect(sheet, x+w*0.2, h*0.25, w*0.6, h*0.35, body)
	ebitenutil.DrawRect(sheet, x+w*0.65, h*0.3, 2, 2, color.White)
}
