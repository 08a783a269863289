package guibridge

// Settings configures window construction and backend initialization.
// Nothing in here influences the frame driver's state machine.
type Settings struct {
	Title  string
	Width  int // initial logical width
	Height int // initial logical height

	Resizable bool
	VSync     bool
	Samples   int // MSAA sample count, 0 disables multisampling

	// ClearColor is the RGBA background the backend clears to each frame.
	ClearColor [4]float32

	// ScaleFactor forces a fixed logical-to-physical scale. Zero means use
	// the scale the host reports (and follow its DPI-change events).
	ScaleFactor float32

	// FontSize is the atlas rasterization size in pixels.
	// Zero means DefaultFontSize.
	FontSize float32
}

// DefaultSettings returns settings for a resizable 800x600 vsynced window.
func DefaultSettings() Settings {
	return Settings{
		Title:      "guibridge",
		Width:      800,
		Height:     600,
		Resizable:  true,
		VSync:      true,
		ClearColor: [4]float32{0.12, 0.12, 0.14, 1.0},
	}
}
