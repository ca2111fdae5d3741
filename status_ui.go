package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const controlsHint = "drag: paint   1-9: select   C: fill"

// StatusBar is the line of text along the bottom of the window.
type StatusBar struct {
	text  *widget.Text
	label string
}

// NewStatusUI builds the status bar anchored to the bottom of the window.
func NewStatusUI() (*ebitenui.UI, *StatusBar) {
	barImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff})

	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var face ebtext.Face = &ebtext.GoTextFace{Source: src, Size: 14}

	text := widget.NewText(
		widget.TextOpts.Text("loading textures", &face, color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: margin, Right: margin}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, statusBarH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	bar.AddChild(text)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	return &ebitenui.UI{Container: root}, &StatusBar{text: text}
}

// SetLoading shows texture load progress.
func (s *StatusBar) SetLoading(loaded, total int) {
	s.set(fmt.Sprintf("loading textures %d/%d", loaded, total))
}

// SetSelection shows the selected texture and whether a drag is in progress.
func (s *StatusBar) SetSelection(index int, name string, drawing bool) {
	mode := "idle"
	if drawing {
		mode = "painting"
	}
	s.set(fmt.Sprintf("texture %d (%s)   %s   %s", index+1, name, mode, controlsHint))
}

func (s *StatusBar) set(label string) {
	if label == s.label {
		return
	}
	s.label = label
	s.text.Label = label
}
