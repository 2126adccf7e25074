package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/tictactoe-minimax/internal/events"
	"ctchen222/tictactoe-minimax/internal/game"
	"ctchen222/tictactoe-minimax/internal/player"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxRejections bounds how often one player may be asked again for
// the same turn.
const DefaultMaxRejections = 10

var tracer = otel.Tracer("match")

var (
	ErrTooManyRejections = errors.New("too many rejected moves")
	ErrSameMark          = errors.New("players need two distinct marks")
)

// Notifier receives the events of a match as they happen.
type Notifier interface {
	Notify(ctx context.Context, e events.Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, e events.Event)

func (f NotifierFunc) Notify(ctx context.Context, e events.Event) { f(ctx, e) }

// Result is the outcome of a finished match.
type Result struct {
	GameID     string
	Winner     game.PlayerMark
	WinnerName string
	Draw       bool
	Moves      []int
	Board      game.Board
}

// Controller alternates two players until one wins or the board fills up.
type Controller struct {
	players       [2]player.Player
	notifier      Notifier
	maxRejections int
	logger        *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets the receiver of match events.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithMaxRejections sets how many rejected moves a player may make in one turn.
func WithMaxRejections(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxRejections = n
		}
	}
}

// WithLogger sets the logger used by the controller.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a match in which first moves first.
func NewController(first, second player.Player, opts ...Option) *Controller {
	c := &Controller{
		players:       [2]player.Player{first, second},
		notifier:      NotifierFunc(func(context.Context, events.Event) {}),
		maxRejections: DefaultMaxRejections,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run plays the match to the end.
func (c *Controller) Run(ctx context.Context) (*Result, error) {
	first, second := c.players[0], c.players[1]
	if !first.Mark().Valid() || first.Mark().Opponent() != second.Mark() {
		return nil, fmt.Errorf("%s=%q, %s=%q: %w", first.Name(), first.Mark(), second.Name(), second.Mark(), ErrSameMark)
	}

	gameID := uuid.New().String()
	ctx, span := tracer.Start(ctx, "match.Run", trace.WithAttributes(
		attribute.String("game.id", gameID),
		attribute.String("game.first", first.Name()),
	))
	defer span.End()

	logger := c.logger.With("game.id", gameID)
	board := game.NewBoard()
	moves := make([]int, 0, game.Size)

	c.emit(ctx, logger, events.GameStarted, gameID, events.GameStartedPayload{
		Players: [2]events.PlayerInfo{info(first), info(second)},
		First:   info(first),
		Board:   board,
	})
	logger.InfoContext(ctx, "Game started", "first", first.Name(), "first.mark", first.Mark())

	for turn := 0; ; turn++ {
		p := c.players[turn%2]

		next, cell, err := c.playTurn(ctx, logger, gameID, p, board)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Match aborted")
			logger.ErrorContext(ctx, "Match aborted", "player", p.Name(), "error", err)
			return nil, err
		}
		board = next
		moves = append(moves, cell)

		c.emit(ctx, logger, events.MoveMade, gameID, events.MoveMadePayload{
			Player: info(p),
			Cell:   cell,
			Ply:    len(moves),
			Board:  board,
		})

		result := &Result{GameID: gameID, Moves: moves, Board: board}
		switch {
		case board.IsWon(p.Mark()):
			result.Winner = p.Mark()
			result.WinnerName = p.Name()
			winner := info(p)
			c.emit(ctx, logger, events.GameOver, gameID, events.GameOverPayload{Winner: &winner, Moves: moves, Board: board})
		case board.IsFull():
			result.Draw = true
			c.emit(ctx, logger, events.GameOver, gameID, events.GameOverPayload{Draw: true, Moves: moves, Board: board})
		default:
			continue
		}

		span.SetAttributes(
			attribute.String("game.winner", string(result.Winner)),
			attribute.Bool("game.draw", result.Draw),
			attribute.Int("game.plies", len(moves)),
		)
		logger.InfoContext(ctx, "Game over", "winner", result.WinnerName, "draw", result.Draw, "plies", len(moves))
		return result, nil
	}
}

// playTurn asks p for a move until it can be placed on board.
func (c *Controller) playTurn(ctx context.Context, logger *slog.Logger, gameID string, p player.Player, board game.Board) (game.Board, int, error) {
	ctx, span := tracer.Start(ctx, "match.playTurn", trace.WithAttributes(
		attribute.String("player.name", p.Name()),
		attribute.String("player.mark", string(p.Mark())),
	))
	defer span.End()

	for rejections := 0; ; {
		cell, err := p.MakeMove(ctx, board)
		if err == nil {
			var next game.Board
			if next, err = board.Place(p.Mark(), cell); err == nil {
				span.SetAttributes(attribute.Int("move.cell", cell), attribute.Int("move.rejections", rejections))
				return next, cell, nil
			}
		}

		if !recoverable(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Move failed")
			return board, -1, fmt.Errorf("%s could not move: %w", p.Name(), err)
		}

		rejections++
		logger.WarnContext(ctx, "Move rejected", "player", p.Name(), "cell", cell, "error", err)
		c.emit(ctx, logger, events.MoveRejected, gameID, events.MoveRejectedPayload{
			Player: info(p),
			Cell:   cell,
			Reason: err.Error(),
		})
		if rejections >= c.maxRejections {
			span.SetStatus(codes.Error, "Too many rejected moves")
			return board, -1, fmt.Errorf("%s after %d attempts: %w", p.Name(), rejections, ErrTooManyRejections)
		}
	}
}

func (c *Controller) emit(ctx context.Context, logger *slog.Logger, eventType, gameID string, payload any) {
	e, err := events.New(eventType, gameID, payload)
	if err != nil {
		logger.ErrorContext(ctx, "Could not build event", "event", eventType, "error", err)
		return
	}
	c.notifier.Notify(ctx, e)
}

func recoverable(err error) bool {
	return errors.Is(err, game.ErrCellOccupied) ||
		errors.Is(err, game.ErrIndexOutOfRange) ||
		errors.Is(err, player.ErrInvalidInput)
}

func info(p player.Player) events.PlayerInfo {
	return events.PlayerInfo{Name: p.Name(), Mark: p.Mark()}
}
