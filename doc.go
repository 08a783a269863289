/*
Package guibridge connects a host windowing layer to an immediate-mode GUI
frame protocol and hands the resulting draw data to a pluggable rendering
backend.

The package itself is host- and graphics-agnostic. It defines the input
accumulator, the per-frame protocol (open frame, run the user callback, close
frame, render), and the backend lifecycle contract. Concrete glue lives in
subpackages:

  - window:         opens a GLFW window and pumps its event loop into a Driver
  - backend/opengl: renders a frame's DrawList through OpenGL 4.1 core

# Quick Start

	win, err := window.Open(guibridge.DefaultSettings(), func(f *guibridge.Frame) {
	    f.Rect(20, 20, 200, 100, guibridge.RGBA(40, 40, 48, 255))
	    f.Text(32, 32, guibridge.ColorWhite, "hello")
	})
	if err != nil {
	    log.Fatal(err)
	}
	err = win.Run()

The callback runs once per frame on the host's event-loop thread. It receives a
*Frame whose draw primitives append to the frame's DrawList; the handle is
invalidated when the frame closes and must not be retained.

# Lifecycle

A Driver moves through four states: it is created uninitialized, opens once the
host window and the rendering backend exist, processes events and frames while
open, and closes exactly once: either because the host announced the window
will close or because the backend reported a fatal render error. The backend's
Destroy is called on that single closing transition and never again.

# Coordinates

All positions inside the GUI are logical pixels. The input translator divides
incoming physical pointer coordinates by the current scale factor, and the
renderer multiplies clip rectangles back up when setting the scissor, so user
code never sees the DPI scale except through IO.ScaleFactor.

# Threading

Everything in this package runs on the single thread the host event loop
drives. There is no internal locking and no background goroutine; clipboard
and graphics calls are treated as prompt, synchronous operations.
*/
package guibridge
