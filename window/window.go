package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/javanhut/RavenGrid/assets"
)

func init() {
	// GLFW event handling must run on the main thread
	runtime.LockOSThread()
}

// Config holds window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DefaultConfig returns the default window configuration
func DefaultConfig() Config {
	return Config{
		Width:  1100,
		Height: 700,
		Title:  "Raven Grid",
	}
}

// Window wraps a GLFW window with OpenGL context
type Window struct {
	glfw         *glfw.Window
	config       Config
	isFullscreen bool
	savedX       int
	savedY       int
	savedWidth   int
	savedHeight  int
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(config Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	// Set X11 window class for proper WM integration
	glfw.WindowHintString(glfw.X11ClassName, "raven-grid")
	glfw.WindowHintString(glfw.X11InstanceName, "raven-grid")

	window, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	glfw.SwapInterval(1)

	// Blending for text rendering and translucent selection
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w := &Window{
		glfw:   window,
		config: config,
	}

	if icons := assets.RenderIconSizes(); len(icons) > 0 {
		window.SetIcon(icons)
	}

	return w, nil
}

// GLFW returns the underlying GLFW window
func (w *Window) GLFW() *glfw.Window {
	return w.glfw
}

// GetSize returns the window size in screen coordinates
func (w *Window) GetSize() (int, int) {
	return w.glfw.GetSize()
}

// GetFramebufferSize returns the framebuffer size in pixels
func (w *Window) GetFramebufferSize() (int, int) {
	return w.glfw.GetFramebufferSize()
}

// PixelRatio returns framebuffer pixels per screen coordinate
func (w *Window) PixelRatio() float32 {
	width, _ := w.glfw.GetSize()
	fbWidth, _ := w.glfw.GetFramebufferSize()
	if width <= 0 || fbWidth <= 0 {
		return 1
	}
	return float32(fbWidth) / float32(width)
}

func (w *Window) ShouldClose() bool {
	return w.glfw.ShouldClose()
}

func (w *Window) SetShouldClose(close bool) {
	w.glfw.SetShouldClose(close)
}

func (w *Window) SwapBuffers() {
	w.glfw.SwapBuffers()
}

// Clear clears the screen with the given color
func (w *Window) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SetViewport sets the OpenGL viewport
func (w *Window) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetCursor shows a standard cursor shape
func (w *Window) SetCursor(shape glfw.StandardCursor) {
	w.glfw.SetCursor(cursorFor(shape))
}

var cursors = map[glfw.StandardCursor]*glfw.Cursor{}

func cursorFor(shape glfw.StandardCursor) *glfw.Cursor {
	if c, ok := cursors[shape]; ok {
		return c
	}
	c := glfw.CreateStandardCursor(shape)
	cursors[shape] = c
	return c
}

// ToggleFullscreen toggles between fullscreen and windowed mode
func (w *Window) ToggleFullscreen() {
	if w.isFullscreen {
		w.glfw.SetMonitor(nil, w.savedX, w.savedY, w.savedWidth, w.savedHeight, 0)
		w.isFullscreen = false
		return
	}
	w.savedX, w.savedY = w.glfw.GetPos()
	w.savedWidth, w.savedHeight = w.glfw.GetSize()

	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	w.glfw.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	w.isFullscreen = true
}

// IsFullscreen reports whether the window covers the primary monitor
func (w *Window) IsFullscreen() bool {
	return w.isFullscreen
}

// Destroy cleans up window resources
func (w *Window) Destroy() {
	for shape, c := range cursors {
		c.Destroy()
		delete(cursors, shape)
	}
	w.glfw.Destroy()
	glfw.Terminate()
}

// PollEvents processes pending events
func PollEvents() {
	glfw.PollEvents()
}
