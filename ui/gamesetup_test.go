package ui

import (
	"testing"

	"github.com/rivo/tview"

	"gomoku-local/engine"
)

func TestGameSetupTolerance(t *testing.T) {
	base := engine.DefaultConfig()
	setup := NewGameSetup(base, func(engine.GameConfig) {}, func() {})
	if got := setup.Config(); got.HitTolerance != 0.6 || got.Geometry != base.Geometry {
		t.Fatalf("initial config = %+v", got)
	}

	dropdown := setup.form.GetFormItem(0).(*tview.DropDown)
	dropdown.SetCurrentOption(3)
	if got := setup.Config().HitTolerance; got != 1.0 {
		t.Errorf("tolerance = %g, want 1.0", got)
	}
}

func TestGameSetupKeepsConfiguredTolerance(t *testing.T) {
	base := engine.DefaultConfig()
	base.HitTolerance = 0.75
	setup := NewGameSetup(base, func(engine.GameConfig) {}, func() {})

	dropdown := setup.form.GetFormItem(0).(*tview.DropDown)
	dropdown.SetCurrentOption(0)
	dropdown.SetCurrentOption(len(toleranceChoices))
	if got := setup.Config().HitTolerance; got != 0.75 {
		t.Errorf("tolerance = %g, want 0.75", got)
	}
}
