package keybindings

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/javanhut/RavenGrid/input"
)

// KeyAction represents the action to take for a key press
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionExit
	ActionNavigate
	ActionUndo
	ActionRedo
	ActionCopy
	ActionCut
	ActionPaste
	ActionSelectAll
	ActionEditCell
	ActionInsertRow
	ActionRemoveRow
	ActionInsertColumn
	ActionRemoveColumn
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
	ActionCycleTheme
	ActionToggleFullscreen
	ActionOpenSettings
)

// KeyResult contains the result of processing a key. Key and Mods are set
// for ActionNavigate.
type KeyResult struct {
	Action KeyAction
	Key    input.Key
	Mods   input.Mods
}

var navKeys = map[glfw.Key]input.Key{
	glfw.KeyUp:        input.KeyUp,
	glfw.KeyDown:      input.KeyDown,
	glfw.KeyLeft:      input.KeyLeft,
	glfw.KeyRight:     input.KeyRight,
	glfw.KeyEnter:     input.KeyEnter,
	glfw.KeyKPEnter:   input.KeyEnter,
	glfw.KeyTab:       input.KeyTab,
	glfw.KeyDelete:    input.KeyDelete,
	glfw.KeyBackspace: input.KeyBackspace,
	glfw.KeyEscape:    input.KeyEscape,
	glfw.KeyHome:      input.KeyHome,
	glfw.KeyEnd:       input.KeyEnd,
	glfw.KeyPageUp:    input.KeyPageUp,
	glfw.KeyPageDown:  input.KeyPageDown,
}

// TranslateMods converts GLFW modifier bits
func TranslateMods(mods glfw.ModifierKey) input.Mods {
	var m input.Mods
	if mods&glfw.ModShift != 0 {
		m |= input.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= input.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= input.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= input.ModSuper
	}
	return m
}

// TranslateKey translates a GLFW key event to a grid action
func TranslateKey(key glfw.Key, mods glfw.ModifierKey) KeyResult {
	ctrl := mods&glfw.ModControl != 0
	shift := mods&glfw.ModShift != 0
	alt := mods&glfw.ModAlt != 0

	plus := key == glfw.KeyEqual || key == glfw.KeyKPAdd
	minus := key == glfw.KeyMinus || key == glfw.KeyKPSubtract

	if ctrl {
		switch {
		case key == glfw.KeyQ:
			return KeyResult{Action: ActionExit}
		case key == glfw.KeyZ && shift, key == glfw.KeyY:
			return KeyResult{Action: ActionRedo}
		case key == glfw.KeyZ:
			return KeyResult{Action: ActionUndo}
		case key == glfw.KeyC:
			return KeyResult{Action: ActionCopy}
		case key == glfw.KeyX:
			return KeyResult{Action: ActionCut}
		case key == glfw.KeyV:
			return KeyResult{Action: ActionPaste}
		case key == glfw.KeyA:
			return KeyResult{Action: ActionSelectAll}
		case key == glfw.KeyT:
			return KeyResult{Action: ActionCycleTheme}
		case key == glfw.KeyComma:
			return KeyResult{Action: ActionOpenSettings}

		// Structure edits at the anchor
		case plus && alt:
			return KeyResult{Action: ActionInsertColumn}
		case minus && alt:
			return KeyResult{Action: ActionRemoveColumn}
		case plus && shift:
			return KeyResult{Action: ActionInsertRow}
		case minus && shift:
			return KeyResult{Action: ActionRemoveRow}

		case plus:
			return KeyResult{Action: ActionZoomIn}
		case minus:
			return KeyResult{Action: ActionZoomOut}
		case key == glfw.Key0 || key == glfw.KeyKP0:
			return KeyResult{Action: ActionZoomReset}
		}
		return KeyResult{Action: ActionNone}
	}

	if key == glfw.KeyF2 {
		return KeyResult{Action: ActionEditCell}
	}
	if key == glfw.KeyF11 {
		return KeyResult{Action: ActionToggleFullscreen}
	}

	if nav, ok := navKeys[key]; ok {
		return KeyResult{Action: ActionNavigate, Key: nav, Mods: TranslateMods(mods)}
	}

	return KeyResult{Action: ActionNone}
}

// TranslateChar filters character input meant for cells. Characters typed
// with Ctrl, Alt or Super held are shortcuts, not text.
func TranslateChar(char rune, mods glfw.ModifierKey) (rune, bool) {
	if mods&(glfw.ModControl|glfw.ModAlt|glfw.ModSuper) != 0 {
		return 0, false
	}
	if char < ' ' || char == 0x7f {
		return 0, false
	}
	return char, true
}
