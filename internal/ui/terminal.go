package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
)

const (
	pageMenu  = "menu"
	pageGame  = "game"
	pageNames = "names"
	pageStats = "stats"

	requestTimeout = 5 * time.Second
)

type gameManager interface {
	StartGame(ctx context.Context, req usecase.StartRequest) (*usecase.Snapshot, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*usecase.Snapshot, error)
	NewRound(ctx context.Context, sessionID string) (*usecase.Snapshot, error)
	LeaveGame(ctx context.Context, sessionID string) error
	GetStats(ctx context.Context) (*entity.Stats, error)
	ResetStats(ctx context.Context) error
	OnUpdate(fn func(usecase.Update))
}

// Terminal owns the tview application. All fields are touched only on the tview goroutine.
type Terminal struct {
	logger  *slog.Logger
	manager gameManager

	app    *tview.Application
	pages  *tview.Pages
	board  *BoardView
	status *tview.TextView
	score  *tview.TextView
	stats  *tview.TextView

	sessionID string
}

func NewTerminal(logger *slog.Logger, manager gameManager) *Terminal {
	terminal := &Terminal{
		logger:  logger.With("component", "terminal"),
		manager: manager,
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		board:   NewBoardView(),
	}

	terminal.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	terminal.status.SetTextColor(boardColors.Status)

	terminal.score = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	terminal.score.SetBorder(true)
	terminal.score.SetTitle(" Score ")

	terminal.stats = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	terminal.stats.SetBorder(true)
	terminal.stats.SetTitle(" Stats ")
	terminal.stats.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		terminal.pages.SwitchToPage(pageMenu)
		return nil
	})

	terminal.pages.AddPage(pageMenu, terminal.menu(), true, true)
	terminal.pages.AddPage(pageGame, terminal.gameView(), true, false)
	terminal.pages.AddPage(pageStats, terminal.stats, true, false)

	manager.OnUpdate(terminal.onUpdate)

	return terminal
}

// Run blocks until the user quits or ctx is canceled.
func (that *Terminal) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	if err := that.app.SetRoot(that.pages, true).Run(); err != nil {
		return fmt.Errorf("failed to run terminal: %w", err)
	}

	return nil
}

func (that *Terminal) menu() tview.Primitive {
	list := tview.NewList().
		AddItem("Play vs computer (easy)", "", 'e', func() { that.startComputer(entity.EasyDifficulty) }).
		AddItem("Play vs computer (medium)", "", 'm', func() { that.startComputer(entity.MediumDifficulty) }).
		AddItem("Play vs computer (hard)", "", 'h', func() { that.startComputer(entity.HardDifficulty) }).
		AddItem("Two players", "", 't', that.startLocal).
		AddItem("Stats", "", 's', that.showStats).
		AddItem("Reset stats", "", 'r', that.resetStats).
		AddItem("Quit", "", 'q', that.app.Stop)
	list.ShowSecondaryText(false)
	list.SetBorder(true)
	list.SetTitle(" Tic-Tac-Toe ")

	help := tview.NewTextView().
		SetText("Arrows/hjkl: move  |  Enter or 1-9: play  |  n: new round  |  q: menu").
		SetTextAlign(tview.AlignCenter)
	help.SetTextColor(boardColors.Empty)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(list, 0, 1, true).
		AddItem(help, 1, 0, false)
}

func (that *Terminal) gameView() tview.Primitive {
	table := that.board.Table()
	table.SetInputCapture(that.handleKey)

	column := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(table, 0, 1, true).
		AddItem(that.status, 1, 0, false).
		AddItem(that.score, 3, 0, false)

	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(column, 40, 0, true).
		AddItem(nil, 0, 1, false)
}

func (that *Terminal) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		that.board.MoveCursor(-1, 0)
	case tcell.KeyDown:
		that.board.MoveCursor(1, 0)
	case tcell.KeyLeft:
		that.board.MoveCursor(0, -1)
	case tcell.KeyRight:
		that.board.MoveCursor(0, 1)
	case tcell.KeyEnter:
		that.play(that.board.Cursor())
	case tcell.KeyRune:
		switch r := event.Rune(); r {
		case 'h':
			that.board.MoveCursor(0, -1)
		case 'j':
			that.board.MoveCursor(1, 0)
		case 'k':
			that.board.MoveCursor(-1, 0)
		case 'l':
			that.board.MoveCursor(0, 1)
		case 'n':
			that.newRound()
		case 'q':
			that.leave()
		default:
			if cell, ok := cellForRune(r); ok {
				that.play(cell)
			}
		}
	}

	return nil
}

func (that *Terminal) startComputer(difficulty entity.Difficulty) {
	that.askNames(usecase.StartRequest{Mode: entity.ComputerMode, Difficulty: difficulty})
}

func (that *Terminal) startLocal() {
	that.askNames(usecase.StartRequest{Mode: entity.LocalMode})
}

func (that *Terminal) askNames(req usecase.StartRequest) {
	form := NewNameForm(req, that.start, func() {
		that.pages.SwitchToPage(pageMenu)
	})

	that.pages.AddPage(pageNames, form.Form(), true, false)
	that.pages.SwitchToPage(pageNames)
}

func (that *Terminal) start(req usecase.StartRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	snapshot, err := that.manager.StartGame(ctx, req)
	if err != nil {
		that.logger.Error("failed to start game", "error", err)
		return
	}

	that.sessionID = snapshot.ID
	that.render(*snapshot)
	that.pages.SwitchToPage(pageGame)
}

// play - the move runs off the tview goroutine; the board is redrawn from the session update.
func (that *Terminal) play(cell int) {
	sessionID := that.sessionID
	if sessionID == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if _, err := that.manager.MakeTurn(ctx, sessionID, cell); err != nil {
			message := rejectMessage(err)
			that.app.QueueUpdateDraw(func() {
				that.status.SetText(message)
			})
		}
	}()
}

func (that *Terminal) newRound() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	snapshot, err := that.manager.NewRound(ctx, that.sessionID)
	if err != nil {
		that.logger.Error("failed to start new round", "error", err)
		return
	}

	that.render(*snapshot)
}

func (that *Terminal) leave() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := that.manager.LeaveGame(ctx, that.sessionID); err != nil {
		that.logger.Warn("failed to leave game", "error", err)
	}

	that.sessionID = ""
	that.pages.SwitchToPage(pageMenu)
}

func (that *Terminal) showStats() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	stats, err := that.manager.GetStats(ctx)
	if err != nil {
		that.logger.Error("failed to read stats", "error", err)
		that.stats.SetText("Stats are not available")
	} else {
		that.stats.SetText(statsText(stats))
	}

	that.pages.SwitchToPage(pageStats)
}

func (that *Terminal) resetStats() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := that.manager.ResetStats(ctx); err != nil {
		that.logger.Error("failed to reset stats", "error", err)
	}

	that.showStats()
}

// onUpdate - called on a session goroutine. QueueUpdateDraw goes through its own goroutine so the session never
// waits on the tview loop, which also means updates may arrive late or out of order.
func (that *Terminal) onUpdate(update usecase.Update) {
	go that.app.QueueUpdateDraw(func() {
		if update.Snapshot.ID != that.sessionID || isStale(that.board.snapshot, update.Snapshot) {
			return
		}

		that.render(update.Snapshot)
	})
}

func (that *Terminal) render(snapshot usecase.Snapshot) {
	that.board.Render(snapshot)
	that.status.SetText(statusLine(snapshot))
	that.score.SetText(scoreLine(snapshot))
}

func rejectMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Wait for your turn"
	case errors.Is(err, apperror.ErrGameFinished):
		return "Game over, press n for a new round"
	case errors.Is(err, apperror.ErrInvalidMove):
		return "That cell is taken"
	default:
		return "Move failed"
	}
}

func statsText(stats *entity.Stats) string {
	return fmt.Sprintf("Games played: %d\nPlayer one wins: %d\nPlayer two wins: %d\nDraws: %d\n\nPress any key",
		stats.Total, stats.P1Wins, stats.P2Wins, stats.Draws)
}
