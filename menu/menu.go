package menu

import (
	"log"
	"os"
	"strconv"

	"github.com/javanhut/RavenGrid/config"
	"github.com/javanhut/RavenGrid/fonts"
)

var debugMenu = os.Getenv("RAVEN_GRID_DEBUG") == "1"

// MenuState represents the current menu state
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuMain
	MenuTheme
	MenuFont
)

// InputState tracks which setting is being typed
type InputState int

const (
	InputNone InputState = iota
	InputFontSize
	InputWheelStep
	InputAutoScrollStep
	InputStatsDelay
	InputHistoryLimit
	InputDoubleClick
)

// Main menu rows
const (
	itemTheme = iota
	itemFont
	itemFontSize
	itemWheelStep
	itemAutoScroll
	itemStatsDelay
	itemHistoryLimit
	itemDoubleClick
	itemSeparator
	itemSave
	itemCancel
)

// MenuItem represents a menu item
type MenuItem struct {
	Label    string
	Value    string
	Disabled bool
}

// Menu manages the settings overlay. Changes apply live through
// OnConfigChanged; Cancel restores the values the menu was opened with.
type Menu struct {
	State         MenuState
	Config        *config.Config
	SelectedIndex int
	Items         []MenuItem
	ScrollOffset  int

	InputActive bool
	InputState  InputState
	InputBuffer string
	InputLabel  string

	StatusMessage string

	// SavePath overrides the config location; empty uses the default path
	SavePath        string
	OnConfigChanged func(cfg *config.Config) error
	// LiveFontSize reports the size on screen, which zoom may have moved
	// away from the configured one
	LiveFontSize func() float32

	original config.Config
}

// NewMenu creates a menu editing cfg in place
func NewMenu(cfg *config.Config) *Menu {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Menu{State: MenuClosed, Config: cfg}
}

// Open opens the menu
func (m *Menu) Open() {
	m.original = *m.Config
	m.State = MenuMain
	m.SelectedIndex = 0
	m.ScrollOffset = 0
	m.InputActive = false
	m.InputState = InputNone
	m.StatusMessage = ""
	m.buildMainMenu()
	m.debugf("open")
}

// Close closes the menu
func (m *Menu) Close() {
	m.State = MenuClosed
	m.InputActive = false
	m.InputState = InputNone
	m.StatusMessage = ""
	m.debugf("close")
}

// IsOpen returns true if the menu is open
func (m *Menu) IsOpen() bool {
	return m.State != MenuClosed
}

// InputMode returns true if currently accepting text input
func (m *Menu) InputMode() bool {
	return m.InputActive
}

// GetInputPrompt returns the current input prompt
func (m *Menu) GetInputPrompt() string {
	return m.InputLabel
}

// GetInputBuffer returns the text typed so far
func (m *Menu) GetInputBuffer() string {
	return m.InputBuffer
}

func (m *Menu) buildMainMenu() {
	ic := m.Config.Interaction

	historyLimit := "unlimited"
	if ic.HistoryLimit > 0 {
		historyLimit = strconv.Itoa(ic.HistoryLimit)
	}

	m.Items = []MenuItem{
		itemTheme:        {Label: "Theme: " + config.ThemeLabel(m.Config.Theme) + "..."},
		itemFont:         {Label: "Font: " + fontLabel(m.Config.Font) + "..."},
		itemFontSize:     {Label: m.fontSizeLabel()},
		itemWheelStep:    {Label: "Wheel Step: " + strconv.Itoa(ic.WheelStep) + " px"},
		itemAutoScroll:   {Label: "Auto-scroll Speed: " + strconv.Itoa(ic.AutoScrollMaxStep) + " px"},
		itemStatsDelay:   {Label: "Stats Delay: " + strconv.Itoa(ic.StatsDebounceMS) + " ms"},
		itemHistoryLimit: {Label: "Undo Limit: " + historyLimit},
		itemDoubleClick:  {Label: "Double-click: " + strconv.Itoa(ic.DoubleClickMS) + " ms"},
		itemSeparator:    {Label: ""},
		itemSave:         {Label: "Save and Close"},
		itemCancel:       {Label: "Cancel"},
	}
}

func (m *Menu) buildThemeMenu() {
	m.Items = m.Items[:0]
	for _, opt := range config.ThemeOptions() {
		label := opt.Label
		if opt.Name == m.Config.Theme {
			label += " (current)"
		}
		m.Items = append(m.Items, MenuItem{Label: label, Value: opt.Name})
	}
	m.Items = append(m.Items, MenuItem{Label: ""}, MenuItem{Label: "Back"})
}

func (m *Menu) buildFontMenu() {
	m.Items = m.Items[:0]
	for _, f := range fonts.AvailableFonts() {
		label := f.DisplayName
		if f.Name == m.Config.Font {
			label += " (current)"
		}
		m.Items = append(m.Items, MenuItem{Label: label, Value: f.Name})
	}
	m.Items = append(m.Items, MenuItem{Label: ""}, MenuItem{Label: "Back"})
}

func (m *Menu) fontSizeLabel() string {
	label := "Font Size: " + strconv.Itoa(int(m.Config.FontSize))
	if m.LiveFontSize != nil {
		if live := int(m.LiveFontSize()); live != int(m.Config.FontSize) {
			label += " (zoomed to " + strconv.Itoa(live) + ")"
		}
	}
	return label
}

func fontLabel(name string) string {
	for _, f := range fonts.AvailableFonts() {
		if f.Name == name {
			return f.DisplayName
		}
	}
	return name
}

// MoveUp moves selection up
func (m *Menu) MoveUp() {
	if m.InputActive {
		return
	}
	for i := 0; i < len(m.Items); i++ {
		m.SelectedIndex--
		if m.SelectedIndex < 0 {
			m.SelectedIndex = len(m.Items) - 1
		}
		if m.isNavigable(m.SelectedIndex) {
			break
		}
	}
	m.adjustScroll()
}

// MoveDown moves selection down
func (m *Menu) MoveDown() {
	if m.InputActive {
		return
	}
	for i := 0; i < len(m.Items); i++ {
		m.SelectedIndex++
		if m.SelectedIndex >= len(m.Items) {
			m.SelectedIndex = 0
		}
		if m.isNavigable(m.SelectedIndex) {
			break
		}
	}
	m.adjustScroll()
}

// adjustScroll adjusts scroll offset to keep selection visible
func (m *Menu) adjustScroll() {
	visibleItems := 12
	if m.SelectedIndex < m.ScrollOffset {
		m.ScrollOffset = m.SelectedIndex
	} else if m.SelectedIndex >= m.ScrollOffset+visibleItems {
		m.ScrollOffset = m.SelectedIndex - visibleItems + 1
	}
}

// Select handles selection of current item
func (m *Menu) Select() {
	if m.InputActive || !m.isSelectable(m.SelectedIndex) {
		return
	}
	item := m.Items[m.SelectedIndex]
	m.debugf("select state=%d index=%d label=%q", m.State, m.SelectedIndex, item.Label)

	switch m.State {
	case MenuMain:
		m.handleMainSelect()
	case MenuTheme:
		m.handleThemeSelect(item)
	case MenuFont:
		m.handleFontSelect(item)
	}
}

func (m *Menu) handleMainSelect() {
	ic := m.Config.Interaction
	switch m.SelectedIndex {
	case itemTheme:
		m.State = MenuTheme
		m.SelectedIndex = 0
		m.buildThemeMenu()
	case itemFont:
		m.State = MenuFont
		m.SelectedIndex = 0
		m.buildFontMenu()
	case itemFontSize:
		m.startInputWithValue(InputFontSize, "Font size (8-32):", strconv.Itoa(int(m.Config.FontSize)))
	case itemWheelStep:
		m.startInputWithValue(InputWheelStep, "Pixels per wheel notch:", strconv.Itoa(ic.WheelStep))
	case itemAutoScroll:
		m.startInputWithValue(InputAutoScrollStep, "Max auto-scroll pixels per frame:", strconv.Itoa(ic.AutoScrollMaxStep))
	case itemStatsDelay:
		m.startInputWithValue(InputStatsDelay, "Stats delay in ms:", strconv.Itoa(ic.StatsDebounceMS))
	case itemHistoryLimit:
		m.startInputWithValue(InputHistoryLimit, "Undo limit (0 = unlimited):", strconv.Itoa(ic.HistoryLimit))
	case itemDoubleClick:
		m.startInputWithValue(InputDoubleClick, "Double-click interval in ms (100-2000):", strconv.Itoa(ic.DoubleClickMS))
	case itemSave:
		if m.saveConfig() {
			m.Close()
		}
	case itemCancel:
		m.Cancel()
	}
}

func (m *Menu) handleThemeSelect(item MenuItem) {
	if item.Value == "" {
		m.goBack()
		return
	}
	m.Config.Theme = item.Value
	m.apply()
	m.goBack()
}

func (m *Menu) handleFontSelect(item MenuItem) {
	if item.Value == "" {
		m.goBack()
		return
	}
	m.Config.Font = item.Value
	m.apply()
	m.goBack()
}

// startInputWithValue begins input mode with an initial value
func (m *Menu) startInputWithValue(state InputState, label string, initialValue string) {
	m.InputActive = true
	m.InputState = state
	m.InputLabel = label
	m.InputBuffer = initialValue
	m.StatusMessage = ""
}

// HandleChar handles character input. Settings are all whole numbers.
func (m *Menu) HandleChar(char rune) {
	if !m.InputActive || char < '0' || char > '9' {
		return
	}
	m.InputBuffer += string(char)
}

// HandleBackspace handles backspace
func (m *Menu) HandleBackspace() {
	if !m.InputActive || len(m.InputBuffer) == 0 {
		return
	}
	runes := []rune(m.InputBuffer)
	m.InputBuffer = string(runes[:len(runes)-1])
}

// HandleEnter confirms the typed value. An out-of-range value keeps the
// input open with a message.
func (m *Menu) HandleEnter() {
	if !m.InputActive {
		return
	}

	value, err := strconv.Atoi(m.InputBuffer)
	if err != nil {
		m.StatusMessage = "Enter a whole number"
		return
	}

	ic := &m.Config.Interaction
	switch m.InputState {
	case InputFontSize:
		if value < 8 || value > 32 {
			m.StatusMessage = "Font size must be between 8 and 32"
			return
		}
		m.Config.FontSize = float32(value)
	case InputWheelStep:
		if value < 1 {
			m.StatusMessage = "Wheel step must be at least 1"
			return
		}
		ic.WheelStep = value
	case InputAutoScrollStep:
		if value < 1 {
			m.StatusMessage = "Auto-scroll speed must be at least 1"
			return
		}
		ic.AutoScrollMaxStep = value
	case InputStatsDelay:
		ic.StatsDebounceMS = value
	case InputHistoryLimit:
		ic.HistoryLimit = value
	case InputDoubleClick:
		if value < 100 || value > 2000 {
			m.StatusMessage = "Interval must be between 100 and 2000 ms"
			return
		}
		ic.DoubleClickMS = value
	}

	m.debugf("input enter state=%d value=%d", m.InputState, value)
	m.InputActive = false
	m.InputState = InputNone
	m.InputBuffer = ""
	m.apply()
	m.buildMainMenu()
}

// HandleEscape leaves input mode, then the submenu, then the menu
func (m *Menu) HandleEscape() {
	if m.InputActive {
		m.InputActive = false
		m.InputState = InputNone
		m.InputBuffer = ""
		m.StatusMessage = ""
		return
	}
	m.goBack()
}

// Cancel restores the settings from when the menu opened and closes it
func (m *Menu) Cancel() {
	*m.Config = m.original
	m.apply()
	m.Close()
}

// goBack goes back to previous menu
func (m *Menu) goBack() {
	switch m.State {
	case MenuTheme:
		m.State = MenuMain
		m.SelectedIndex = itemTheme
		m.ScrollOffset = 0
		m.buildMainMenu()
	case MenuFont:
		m.State = MenuMain
		m.SelectedIndex = itemFont
		m.ScrollOffset = 0
		m.buildMainMenu()
	default:
		m.Cancel()
	}
}

// GetTitle returns the current menu title
func (m *Menu) GetTitle() string {
	switch m.State {
	case MenuTheme:
		return "Theme"
	case MenuFont:
		return "Font"
	}
	return "Settings"
}

// apply hands the edited config to the application
func (m *Menu) apply() {
	m.Config.Normalize()
	if m.OnConfigChanged == nil {
		return
	}
	if err := m.OnConfigChanged(m.Config); err != nil {
		m.StatusMessage = "Error: " + err.Error()
		m.debugf("apply error: %v", err)
	}
}

func (m *Menu) saveConfig() bool {
	var err error
	if m.SavePath != "" {
		err = m.Config.SaveTo(m.SavePath)
	} else {
		err = m.Config.Save()
	}
	if err != nil {
		m.StatusMessage = "Error: " + err.Error()
		m.debugf("save error: %v", err)
		return false
	}
	m.debugf("save ok")
	return true
}

func (m *Menu) isSelectable(index int) bool {
	if index < 0 || index >= len(m.Items) {
		return false
	}
	item := m.Items[index]
	return item.Label != "" && !item.Disabled
}

func (m *Menu) isNavigable(index int) bool {
	if index < 0 || index >= len(m.Items) {
		return false
	}
	return m.Items[index].Label != ""
}

func (m *Menu) debugf(format string, args ...interface{}) {
	if !debugMenu {
		return
	}
	log.Printf("menu: "+format, args...)
}
