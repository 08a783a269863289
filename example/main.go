// Command example opens a window and draws with the guibridge frame API:
// rectangles, lines, text and live input readouts.
package main

import (
	"fmt"
	"log"

	"github.com/sagacity/guibridge"
	"github.com/sagacity/guibridge/window"
)

func main() {
	settings := guibridge.DefaultSettings()
	settings.Title = "guibridge example"

	var (
		win        *window.Window
		frames     int
		lastClicks int
		clipped    string
	)

	w, err := window.Open(settings, func(f *guibridge.Frame) {
		frames++
		io := f.IO()
		size := f.DisplaySize()

		// Header bar
		f.Rect(0, 0, size.X, 28, guibridge.RGBA(40, 44, 52, 255))
		f.Text(8, 7, guibridge.ColorWhite, "guibridge example")
		fps := fmt.Sprintf("%.1f ms", f.DeltaTime()*1000)
		tw := f.MeasureText(fps)
		f.Text(size.X-tw.X-8, 7, guibridge.RGBA(160, 160, 160, 255), fps)

		// Pointer readout
		f.Text(8, 40, guibridge.ColorWhite,
			fmt.Sprintf("mouse %6.1f %6.1f  wheel %+.1f", io.MousePos.X, io.MousePos.Y, io.Wheel.Y))

		if io.MouseClicked[guibridge.MouseButtonLeft] {
			lastClicks++
		}
		f.Text(8, 58, guibridge.ColorWhite, fmt.Sprintf("left clicks: %d", lastClicks))

		// Ctrl+C copies the counter, Ctrl+V reads it back
		if io.Mods.Has(guibridge.ModCtrl) && io.KeyPressed(guibridge.KeyC) {
			f.SetClipboardText(fmt.Sprintf("frame %d", frames))
		}
		if io.Mods.Has(guibridge.ModCtrl) && io.KeyPressed(guibridge.KeyV) {
			if s, ok := f.ClipboardText(); ok {
				clipped = s
			}
		}
		if clipped != "" {
			f.Text(8, 76, guibridge.RGBA(120, 200, 120, 255), "pasted: "+clipped)
		}

		// A clipped box with an outline and a diagonal
		box := guibridge.Rect{X: 8, Y: 100, W: 200, H: 100}
		f.PushClip(box)
		f.Rect(box.X, box.Y, box.W, box.H, guibridge.RGBA(60, 70, 90, 255))
		f.Line(box.X, box.Y, box.X+box.W, box.Y+box.H, guibridge.RGBA(200, 120, 60, 255), 2)
		f.Text(box.X+4, box.Y+box.H-18, guibridge.ColorWhite, "clipped to this box, overflow is cut off")
		f.PopClip()
		f.RectOutline(box.X, box.Y, box.W, box.H, guibridge.ColorWhite, 1)

		if io.KeyPressed(guibridge.KeyEscape) {
			win.RequestClose()
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	win = w

	if err := win.Run(); err != nil {
		log.Fatal(err)
	}
}
