package menu

import (
	"path/filepath"
	"testing"

	"github.com/javanhut/RavenGrid/config"
)

func newTestMenu(t *testing.T) (*Menu, *int) {
	t.Helper()
	m := NewMenu(config.DefaultConfig())
	m.SavePath = filepath.Join(t.TempDir(), "config.toml")
	applied := 0
	m.OnConfigChanged = func(*config.Config) error {
		applied++
		return nil
	}
	m.Open()
	return m, &applied
}

func TestNavigationSkipsSeparator(t *testing.T) {
	m, _ := newTestMenu(t)
	m.SelectedIndex = itemDoubleClick
	m.MoveDown()
	if m.SelectedIndex != itemSave {
		t.Errorf("SelectedIndex = %d, want %d", m.SelectedIndex, itemSave)
	}
	m.SelectedIndex = 0
	m.MoveUp()
	if m.SelectedIndex != itemCancel {
		t.Errorf("MoveUp from top = %d, want %d", m.SelectedIndex, itemCancel)
	}
}

func TestNumericInput(t *testing.T) {
	m, applied := newTestMenu(t)
	m.SelectedIndex = itemWheelStep
	m.Select()
	if !m.InputMode() || m.GetInputBuffer() != "60" {
		t.Fatalf("input = %v %q, want active with 60", m.InputMode(), m.GetInputBuffer())
	}

	m.HandleBackspace()
	m.HandleBackspace()
	m.HandleChar('x')
	m.HandleChar('9')
	m.HandleChar('0')
	m.HandleEnter()

	if m.InputMode() {
		t.Error("input should close after a valid value")
	}
	if m.Config.Interaction.WheelStep != 90 {
		t.Errorf("WheelStep = %d, want 90", m.Config.Interaction.WheelStep)
	}
	if *applied != 1 {
		t.Errorf("applied = %d, want 1", *applied)
	}
	if m.Items[itemWheelStep].Label != "Wheel Step: 90 px" {
		t.Errorf("label = %q", m.Items[itemWheelStep].Label)
	}
}

func TestOutOfRangeInputStaysOpen(t *testing.T) {
	m, applied := newTestMenu(t)
	m.SelectedIndex = itemFontSize
	m.Select()
	m.InputBuffer = "99"
	m.HandleEnter()

	if !m.InputMode() {
		t.Error("input should stay open on a bad value")
	}
	if m.StatusMessage == "" {
		t.Error("expected a status message")
	}
	if m.Config.FontSize != 14 || *applied != 0 {
		t.Errorf("FontSize = %v applied = %d, want unchanged", m.Config.FontSize, *applied)
	}

	m.HandleEscape()
	if m.InputMode() || !m.IsOpen() {
		t.Error("escape should leave input mode but keep the menu open")
	}
}

func TestThemeSelectAndCancel(t *testing.T) {
	m, applied := newTestMenu(t)
	m.Select()
	if m.State != MenuTheme {
		t.Fatalf("State = %d, want theme menu", m.State)
	}
	m.SelectedIndex = 1
	m.Select()
	if m.Config.Theme != "crow-black" {
		t.Errorf("Theme = %q, want crow-black", m.Config.Theme)
	}
	if m.State != MenuMain || *applied != 1 {
		t.Errorf("State = %d applied = %d", m.State, *applied)
	}

	m.SelectedIndex = itemCancel
	m.Select()
	if m.IsOpen() {
		t.Error("cancel should close the menu")
	}
	if m.Config.Theme != "raven-blue" {
		t.Errorf("Theme after cancel = %q, want raven-blue", m.Config.Theme)
	}
	if *applied != 2 {
		t.Errorf("cancel should reapply the original settings, applied = %d", *applied)
	}
}

func TestSaveAndClose(t *testing.T) {
	m, _ := newTestMenu(t)
	m.SelectedIndex = itemHistoryLimit
	m.Select()
	m.InputBuffer = "25"
	m.HandleEnter()

	m.SelectedIndex = itemSave
	m.Select()
	if m.IsOpen() {
		t.Fatalf("menu still open: %q", m.StatusMessage)
	}

	loaded, err := config.LoadFrom(m.SavePath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Interaction.HistoryLimit != 25 {
		t.Errorf("HistoryLimit = %d, want 25", loaded.Interaction.HistoryLimit)
	}
}

func TestFontSelectAndBack(t *testing.T) {
	m, applied := newTestMenu(t)
	m.SelectedIndex = itemFont
	m.Select()
	if m.State != MenuFont || m.GetTitle() != "Font" {
		t.Fatalf("State = %d title = %q, want font menu", m.State, m.GetTitle())
	}
	if m.Items[0].Label != "Go Mono (current)" {
		t.Errorf("first font = %q", m.Items[0].Label)
	}

	m.SelectedIndex = 2
	m.Select()
	if m.Config.Font != "goregular" || *applied != 1 {
		t.Errorf("Font = %q applied = %d", m.Config.Font, *applied)
	}
	if m.State != MenuMain || m.SelectedIndex != itemFont {
		t.Errorf("State = %d index = %d, want main at the font row", m.State, m.SelectedIndex)
	}
	if m.Items[itemFont].Label != "Font: Go Regular..." {
		t.Errorf("label = %q", m.Items[itemFont].Label)
	}

	m.SelectedIndex = itemFont
	m.Select()
	m.HandleEscape()
	if m.State != MenuMain || m.Config.Font != "goregular" {
		t.Errorf("escape from the font list should only go back")
	}
}

func TestFontSizeLabelShowsZoom(t *testing.T) {
	m, _ := newTestMenu(t)
	live := float32(14)
	m.LiveFontSize = func() float32 { return live }
	m.Open()
	if got := m.Items[itemFontSize].Label; got != "Font Size: 14" {
		t.Errorf("label = %q", got)
	}

	live = 18
	m.Open()
	if got := m.Items[itemFontSize].Label; got != "Font Size: 14 (zoomed to 18)" {
		t.Errorf("zoomed label = %q", got)
	}
}
