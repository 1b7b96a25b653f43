package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/javanhut/RavenGrid/config"
	"github.com/javanhut/RavenGrid/editor"
	"github.com/javanhut/RavenGrid/geometry"
	"github.com/javanhut/RavenGrid/grid"
	"github.com/javanhut/RavenGrid/history"
	"github.com/javanhut/RavenGrid/input"
	"github.com/javanhut/RavenGrid/keybindings"
	"github.com/javanhut/RavenGrid/menu"
	"github.com/javanhut/RavenGrid/render"
	"github.com/javanhut/RavenGrid/stats"
	"github.com/javanhut/RavenGrid/structure"
	"github.com/javanhut/RavenGrid/window"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type toastState struct {
	message   string
	expiresAt time.Time
}

// statusLine is what the status bar shows
type statusLine struct {
	address string
	summary string
	toast   *toastState
}

func (s *statusLine) ShowCellAddress(address string) {
	s.address = address
}

func (s *statusLine) ShowError(message string) {
	s.notify(message, 2*time.Second)
}

func (s *statusLine) notify(message string, d time.Duration) {
	if strings.TrimSpace(message) == "" {
		return
	}
	s.toast.message = message
	s.toast.expiresAt = time.Now().Add(d)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	win, err := window.NewWindow(window.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Destroy()

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()
	renderer.SetThemeByName(cfg.Theme)
	if err := renderer.ChangeFont(cfg.Font); err != nil {
		log.Printf("Failed to load font: %v", err)
	}
	if err := renderer.SetDefaultFontSize(cfg.FontSize); err != nil {
		log.Printf("Failed to apply font size: %v", err)
	}
	if cfg.Fullscreen {
		win.ToggleFullscreen()
	}

	g := grid.NewGrid(cfg.GridOptions())
	calc := geometry.NewCalculator(g, window.NewSurface(win, render.StatusBarHeight))
	calc.UpdateViewport()

	toast := &toastState{}
	status := &statusLine{address: grid.CellAddress(1, 1), toast: toast}

	var ed *editor.Editor
	settingsMenu := menu.NewMenu(cfg)
	settingsMenu.LiveFontSize = renderer.GetFontSize
	loop := render.NewFrameLoop(func() {
		width, height := win.GetSize()
		fbWidth, fbHeight := win.GetFramebufferSize()
		win.SetViewport(fbWidth, fbHeight)
		bg := renderer.Theme().Background
		win.Clear(bg[0], bg[1], bg[2], bg[3])
		view := render.SheetView{
			Calc:    calc,
			Editor:  ed,
			Address: status.address,
			Summary: status.summary,
			Menu:    settingsMenu,
		}
		if time.Now().Before(toast.expiresAt) {
			view.Toast = toast.message
		}
		renderer.RenderSheet(view, width, height)
		win.SwapBuffers()
	})

	hist := history.New(g, loop, cfg.Interaction.HistoryLimit)
	ed = editor.New(g, hist)
	structEditor := structure.NewEditor(g, hist, calc)

	debouncer := stats.NewDebouncer(cfg.StatsDelay())
	refreshStats := func() {
		debouncer.Trigger(func() {
			status.summary = stats.Selection(g).String()
			loop.RequestRedraw()
		})
	}

	deps := input.Deps{
		Calc:              calc,
		History:           hist,
		Editor:            ed,
		Redraw:            loop,
		Status:            status,
		OnSelectionChange: refreshStats,
	}
	dispatcher := input.NewDispatcher(deps, cfg.InputOptions())
	navigator := input.NewNavigator(deps)
	clicks := input.NewClickCounter(cfg.DoubleClickInterval())

	g.Select(1, 1)

	// afterHistory refits the view after undo, redo or a structural edit
	afterHistory := func() {
		calc.ClampScroll()
		calc.UpdateViewport()
		if r, ok := g.Selection(); ok {
			status.ShowCellAddress(grid.RangeAddress(r))
		}
		refreshStats()
		loop.RequestRedraw()
	}

	structural := func(op func() error) {
		if ed.IsActive() {
			ed.CommitAndHide()
		}
		err := op()
		var verr *structure.ValidationError
		switch {
		case errors.As(err, &verr):
			status.ShowError(verr.Message())
		case err != nil:
			status.ShowError(err.Error())
		}
		afterHistory()
	}

	settingsMenu.OnConfigChanged = func(c *config.Config) error {
		renderer.SetThemeByName(c.Theme)
		dispatcher.SetOptions(c.InputOptions())
		debouncer.Delay = c.StatsDelay()
		clicks.Interval = c.DoubleClickInterval()
		hist.SetLimit(c.Interaction.HistoryLimit)
		loop.RequestRedraw()
		if c.Font != renderer.CurrentFont() {
			if err := renderer.ChangeFont(c.Font); err != nil {
				return err
			}
		}
		return renderer.SetDefaultFontSize(c.FontSize)
	}

	saveConfig := func() {
		if err := cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	var cursorX, cursorY float64
	var currentMods glfw.ModifierKey

	pointerAt := func(x, y float64) input.Pointer {
		return input.Pointer{
			Point: input.Point{X: int(x), Y: int(y)},
			Mods:  keybindings.TranslateMods(currentMods),
		}
	}

	win.GLFW().SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		currentMods = mods
		if action == glfw.Release {
			return
		}

		if settingsMenu.IsOpen() {
			handleMenuKey(settingsMenu, key)
			loop.RequestRedraw()
			return
		}

		result := keybindings.TranslateKey(key, mods)
		switch result.Action {
		case keybindings.ActionExit:
			win.SetShouldClose(true)
		case keybindings.ActionNavigate:
			navigator.HandleKey(result.Key, result.Mods)
		case keybindings.ActionUndo:
			if ed.IsActive() {
				ed.Cancel()
			}
			if hist.Undo() {
				afterHistory()
			}
		case keybindings.ActionRedo:
			if ed.IsActive() {
				ed.CommitAndHide()
			}
			if hist.Redo() {
				afterHistory()
			}
		case keybindings.ActionCopy:
			if text := navigator.Copy(); text != "" {
				glfw.SetClipboardString(text)
			}
		case keybindings.ActionCut:
			if text := navigator.Cut(); text != "" {
				glfw.SetClipboardString(text)
			}
		case keybindings.ActionPaste:
			if clip := glfw.GetClipboardString(); clip != "" {
				navigator.Paste(clip)
			}
		case keybindings.ActionSelectAll:
			navigator.SelectAll()
		case keybindings.ActionEditCell:
			navigator.EditAnchor()
		case keybindings.ActionInsertRow:
			structural(structEditor.InsertRowAtAnchor)
		case keybindings.ActionRemoveRow:
			structural(structEditor.RemoveAnchorRow)
		case keybindings.ActionInsertColumn:
			structural(structEditor.InsertColumnAtAnchor)
		case keybindings.ActionRemoveColumn:
			structural(structEditor.RemoveAnchorColumn)
		case keybindings.ActionZoomIn, keybindings.ActionZoomOut, keybindings.ActionZoomReset:
			var err error
			switch result.Action {
			case keybindings.ActionZoomIn:
				err = renderer.ZoomIn()
			case keybindings.ActionZoomOut:
				err = renderer.ZoomOut()
			default:
				err = renderer.ZoomReset()
			}
			if err != nil {
				log.Printf("Zoom failed: %v", err)
			}
			status.notify(fmt.Sprintf("Font size: %.0f", renderer.GetFontSize()), 900*time.Millisecond)
			loop.RequestRedraw()
		case keybindings.ActionCycleTheme:
			cfg.Theme = config.NextTheme(cfg.Theme)
			renderer.SetThemeByName(cfg.Theme)
			status.notify("Theme: "+config.ThemeLabel(cfg.Theme), 900*time.Millisecond)
			saveConfig()
			loop.RequestRedraw()
		case keybindings.ActionToggleFullscreen:
			win.ToggleFullscreen()
			cfg.Fullscreen = win.IsFullscreen()
			saveConfig()
		case keybindings.ActionOpenSettings:
			if ed.IsActive() {
				ed.CommitAndHide()
			}
			settingsMenu.Open()
			loop.RequestRedraw()
		}
	})

	win.GLFW().SetCharCallback(func(w *glfw.Window, char rune) {
		if settingsMenu.IsOpen() {
			settingsMenu.HandleChar(char)
			loop.RequestRedraw()
			return
		}
		if c, ok := keybindings.TranslateChar(char, currentMods); ok {
			if navigator.HandleChar(c) {
				refreshStats()
			}
		}
	})

	win.GLFW().SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		currentMods = mods
		if button != glfw.MouseButtonLeft || settingsMenu.IsOpen() {
			return
		}
		p := pointerAt(cursorX, cursorY)
		switch action {
		case glfw.Press:
			p.Clicks = clicks.Down(p.Point)
			dispatcher.PointerDown(p)
		case glfw.Release:
			dispatcher.PointerUp(p)
		}
		win.SetCursor(cursorShape(dispatcher.Cursor()))
	})

	win.GLFW().SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		cursorX, cursorY = xpos, ypos
		if settingsMenu.IsOpen() {
			return
		}
		cursor := dispatcher.PointerMove(pointerAt(xpos, ypos))
		win.SetCursor(cursorShape(cursor))
	})

	win.GLFW().SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		if settingsMenu.IsOpen() {
			return
		}
		dispatcher.Wheel(xoff, yoff, keybindings.TranslateMods(currentMods))
	})

	win.GLFW().SetSizeCallback(func(w *glfw.Window, width, height int) {
		dispatcher.Resize()
		loop.RequestRedraw()
	})

	win.GLFW().SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		loop.RequestRedraw()
	})

	refreshStats()

	// Main loop
	toastVisible := false
	for !win.ShouldClose() {
		window.PollEvents()

		dispatcher.Step()
		debouncer.Poll()

		if visible := time.Now().Before(toast.expiresAt); visible != toastVisible {
			toastVisible = visible
			loop.RequestRedraw()
		}

		loop.Frame()

		// Small sleep to prevent 100% CPU usage
		time.Sleep(time.Millisecond * 16) // ~60 FPS
	}

	if ed.IsActive() {
		ed.CommitAndHide()
	}
}

// handleMenuKey routes keys to the settings menu while it is open
func handleMenuKey(m *menu.Menu, key glfw.Key) {
	switch key {
	case glfw.KeyUp:
		m.MoveUp()
	case glfw.KeyDown:
		m.MoveDown()
	case glfw.KeyEnter, glfw.KeyKPEnter:
		if m.InputMode() {
			m.HandleEnter()
		} else {
			m.Select()
		}
	case glfw.KeyBackspace:
		m.HandleBackspace()
	case glfw.KeyEscape:
		m.HandleEscape()
	}
}

// cursorShape maps a pointer cursor to the closest GLFW standard cursor
func cursorShape(c input.Cursor) glfw.StandardCursor {
	switch c {
	case input.CursorColResize:
		return glfw.HResizeCursor
	case input.CursorRowResize:
		return glfw.VResizeCursor
	case input.CursorColSelect, input.CursorRowSelect:
		return glfw.HandCursor
	case input.CursorCell:
		return glfw.CrosshairCursor
	}
	return glfw.ArrowCursor
}
