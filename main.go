// gomoku-local is a terminal Gomoku board for two players sharing one keyboard and mouse.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku-local/config"
	"gomoku-local/engine"
	"gomoku-local/game"
	"gomoku-local/logging"
	"gomoku-local/types"
	"gomoku-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagTolerance   = flag.Float64("tolerance", 0, "Click tolerance as a fraction of a cell (0 < t <= 1)")
	flagMoves       = flag.String("moves", "", "Moves to replay: an SGF record or a list like H8,J8,H9")
	flagQuickStart  = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus       = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagPrintRecord = flag.Bool("print-record", false, "Print the game record as SGF on exit")
	flagInitConfig  = flag.Bool("init-config", false, "Write the default config file and exit")
	flagVersion     = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardView
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

// closeLog releases the debug log file. fail calls it before exiting.
var closeLog = func() error { return nil }

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("gomoku-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fail(err)
	}

	if *flagInitConfig {
		path, err := cfg.Save()
		if err != nil {
			fail(err)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if cfg.Debug.Enabled {
		path, err := cfg.DebugLogPath()
		if err != nil {
			fail(err)
		}
		closeFile, err := logging.Init(path)
		if err != nil {
			fail(err)
		}
		closeLog = closeFile
		defer closeLog()
	}

	gameCfg, err := buildGameConfigFromFlags()
	if err != nil {
		fail(err)
	}
	moves, err := game.ParseMoves(*flagMoves, gameCfg.Geometry.CellsPerRow)
	if err != nil {
		fail(fmt.Errorf("-moves: %w", err))
	}

	quickStart := *flagQuickStart || *flagFocus || *flagTolerance > 0 || len(moves) > 0

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● gomoku ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardView(cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			gameBoard.PlaySelected()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'u':
				gameBoard.Undo()
			case 'c':
				gameBoard.Clear()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(
		gameCfg,
		func(c engine.GameConfig) {
			if err := startGame(c, nil); err != nil {
				showError(err)
			}
		},
		func() {
			app.Stop()
		},
	)
	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			app.Stop()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", setupUI.Form(), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)

	if quickStart {
		if err := startGame(gameCfg, moves); err != nil {
			fail(err)
		}
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		fail(err)
	}

	if *flagPrintRecord && gameBoard.Session() != nil {
		fmt.Print(gameBoard.Session().Record())
	}
}

// startGame creates a new session, replays moves on it and shows the game view.
func startGame(gameCfg engine.GameConfig, moves []types.Move) error {
	s, err := game.NewSession(gameCfg)
	if err != nil {
		return err
	}
	if err := s.Replay(moves); err != nil {
		return err
	}
	gameBoard.SetSession(s)
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameBoard.Box)
	return nil
}

func showError(err error) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}

// buildGameConfigFromFlags creates a GameConfig from the config file and command-line flags.
func buildGameConfigFromFlags() (engine.GameConfig, error) {
	gameCfg := cfg.GameConfig()
	if *flagTolerance != 0 {
		gameCfg.HitTolerance = *flagTolerance
	}
	if err := gameCfg.Validate(); err != nil {
		return gameCfg, err
	}
	return gameCfg, nil
}

func fail(err error) {
	report(os.Stderr, err)
	os.Exit(1)
}

// report closes the debug log and prints err to w.
func report(w io.Writer, err error) {
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintf(w, "gomoku-local: close debug log: %s\n", cerr)
	}
	fmt.Fprintf(w, "gomoku-local: %s\n", err)
}
