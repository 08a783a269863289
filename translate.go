package guibridge

// translator turns host events into InputState mutations. It owns the
// physical-to-logical coordinate conversion so everything stored in the input
// state is already in logical pixels.
type translator struct {
	input *InputState
	scale float32
}

func newTranslator(input *InputState, scale float32) translator {
	if scale <= 0 {
		scale = 1
	}
	return translator{input: input, scale: scale}
}

// setScale updates the scale factor and rescales the stored mouse position so
// its logical value keeps pointing at the same physical pixel. The old and new
// factors are both needed, which is why this runs before the field is swapped.
func (t *translator) setScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	if t.scale != scale {
		ratio := t.scale / scale
		t.input.SetMousePos(t.input.MouseX*ratio, t.input.MouseY*ratio)
		t.scale = scale
	}
}

// apply folds a single host event into the input state. Resize and will-close
// events are the driver's business and are not handled here.
func (t *translator) apply(ev Event) {
	switch e := ev.(type) {
	case PointerMovedEvent:
		t.input.SetMousePos(e.X/t.scale, e.Y/t.scale)

	case PointerButtonEvent:
		if button, ok := mouseButtonFromPointer(e.Button); ok {
			t.input.SetMouseButton(button, e.Pressed)
		}

	case ScrollEvent:
		t.input.AddWheel(e.DX, e.DY)

	case KeyEvent:
		// Modifier codes update the bit-set regardless of key mapping. The OS
		// occasionally drops modifier release events around focus changes, so
		// the focus-loss path below is the safety net, not this.
		if mod, ok := modifierFromCode(e.Code); ok {
			if e.Pressed {
				t.input.Mods |= mod
			} else {
				t.input.Mods &^= mod
			}
		}
		if key := keyFromCode(e.Code); key != KeyNone {
			t.input.SetKey(key, e.Pressed)
		}

	case CharEvent:
		if typeableChar(e.Char) {
			t.input.AddChar(e.Char)
		}

	case FocusEvent:
		if !e.Gained {
			t.input.ReleaseAll()
		}
	}
}

// typeableChar reports whether a character belongs in the typed queue.
// C0 control characters (with a carve-out for tab) and DEL would corrupt
// text-edit widgets and are excluded.
func typeableChar(ch rune) bool {
	if ch == '\t' {
		return true
	}
	return ch >= 0x20 && ch != 0x7F
}

// keyFromCode maps a host key code onto the GUI key enum.
// Unmapped codes yield KeyNone and are dropped by the caller.
func keyFromCode(code KeyCode) Key {
	switch code {
	case CodeTab:
		return KeyTab
	case CodeArrowLeft:
		return KeyLeft
	case CodeArrowRight:
		return KeyRight
	case CodeArrowUp:
		return KeyUp
	case CodeArrowDown:
		return KeyDown
	case CodePageUp:
		return KeyPageUp
	case CodePageDown:
		return KeyPageDown
	case CodeHome:
		return KeyHome
	case CodeEnd:
		return KeyEnd
	case CodeInsert:
		return KeyInsert
	case CodeDelete:
		return KeyDelete
	case CodeBackspace:
		return KeyBackspace
	case CodeSpace:
		return KeySpace
	case CodeEnter, CodeNumpadEnter:
		return KeyEnter
	case CodeEscape:
		return KeyEscape
	case CodeKeyA:
		return KeyA
	case CodeKeyC:
		return KeyC
	case CodeKeyV:
		return KeyV
	case CodeKeyX:
		return KeyX
	case CodeKeyY:
		return KeyY
	case CodeKeyZ:
		return KeyZ
	default:
		return KeyNone
	}
}

// modifierFromCode maps modifier key codes onto the Modifiers bit-set.
func modifierFromCode(code KeyCode) (Modifiers, bool) {
	switch code {
	case CodeShiftLeft, CodeShiftRight:
		return ModShift, true
	case CodeControlLeft, CodeControlRight:
		return ModCtrl, true
	case CodeAltLeft, CodeAltRight:
		return ModAlt, true
	case CodeMetaLeft, CodeMetaRight:
		return ModSuper, true
	default:
		return 0, false
	}
}

// mouseButtonFromPointer maps a host pointer button onto the GUI button enum.
// Buttons beyond forward/back are ignored.
func mouseButtonFromPointer(b PointerButton) (MouseButton, bool) {
	switch b {
	case PointerLeft:
		return MouseButtonLeft, true
	case PointerRight:
		return MouseButtonRight, true
	case PointerMiddle:
		return MouseButtonMiddle, true
	case PointerBack:
		return MouseButtonBack, true
	case PointerForward:
		return MouseButtonForward, true
	default:
		return 0, false
	}
}
