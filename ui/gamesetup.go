package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku-local/engine"
)

// toleranceChoices are the hit-test disc diameters offered in the setup form, in cell widths.
var toleranceChoices = []float64{0.4, 0.6, 0.8, 1.0}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()

	base      engine.GameConfig
	tolerance float64
}

// NewGameSetup creates a new game setup form. base supplies the board geometry and the
// initially selected tolerance.
func NewGameSetup(base engine.GameConfig, onStart func(engine.GameConfig), onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:   onStart,
		onCancel:  onCancel,
		base:      base,
		tolerance: base.HitTolerance,
	}

	labels := make([]string, len(toleranceChoices))
	initial := -1
	for i, v := range toleranceChoices {
		labels[i] = fmt.Sprintf("%.1f cell", v)
		if v == base.HitTolerance {
			initial = i
		}
	}
	if initial == -1 {
		// Keep a configured value that is not one of the presets selectable.
		labels = append(labels, fmt.Sprintf("%g cell (config)", base.HitTolerance))
		initial = len(labels) - 1
	}

	form := tview.NewForm()

	form.AddDropDown("Click Tolerance", labels, initial, func(option string, index int) {
		if index < len(toleranceChoices) {
			setup.tolerance = toleranceChoices[index]
		} else {
			setup.tolerance = base.HitTolerance
		}
	})

	form.AddButton("Start Game", func() {
		onStart(setup.Config())
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the game configuration currently selected in the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	cfg := s.base
	cfg.HitTolerance = s.tolerance
	return cfg
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
