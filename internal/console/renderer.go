package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"ctchen222/tictactoe-minimax/internal/events"
	"ctchen222/tictactoe-minimax/internal/game"
)

// Renderer prints match events for a person at a terminal, or as JSON lines
// when JSON is set.
type Renderer struct {
	out   io.Writer
	json  bool
	human game.PlayerMark
}

// NewRenderer creates a renderer. human is the mark of the person at the
// console and picks the wording of the opening message.
func NewRenderer(out io.Writer, human game.PlayerMark, asJSON bool) *Renderer {
	return &Renderer{out: out, json: asJSON, human: human}
}

// Notify implements match.Notifier.
func (r *Renderer) Notify(ctx context.Context, e events.Event) {
	if r.json {
		if err := json.NewEncoder(r.out).Encode(e); err != nil {
			slog.ErrorContext(ctx, "failed to write event", "event", e.Type, "error", err)
		}
		return
	}

	if err := r.render(e); err != nil {
		slog.ErrorContext(ctx, "failed to render event", "event", e.Type, "error", err)
	}
}

func (r *Renderer) render(e events.Event) error {
	switch e.Type {
	case events.GameStarted:
		var p events.GameStartedPayload
		if err := e.Decode(&p); err != nil {
			return err
		}
		if p.First.Mark == r.human {
			fmt.Fprintln(r.out, "Player goes first.")
		} else {
			fmt.Fprintln(r.out, "Machine goes first.")
		}
		fmt.Fprintln(r.out, FormatBoard(p.Board))

	case events.MoveMade:
		var p events.MoveMadePayload
		if err := e.Decode(&p); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "%s (%s) takes cell %d.\n", p.Player.Name, p.Player.Mark, p.Cell+1)
		fmt.Fprintln(r.out, FormatBoard(p.Board))

	case events.MoveRejected:
		var p events.MoveRejectedPayload
		if err := e.Decode(&p); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "That move is not allowed: %s. Try again.\n", p.Reason)

	case events.GameOver:
		var p events.GameOverPayload
		if err := e.Decode(&p); err != nil {
			return err
		}
		fmt.Fprintln(r.out, WinMessage(p))
	}
	return nil
}

// FormatBoard draws the board with the 1-9 cell numbers in empty cells.
func FormatBoard(b game.Board) string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			cell := string(b[idx])
			if b[idx] == game.None {
				cell = strconv.Itoa(idx + 1)
			}
			sb.WriteString(" " + cell + " ")
			if col < 2 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WinMessage describes the end of a game.
func WinMessage(p events.GameOverPayload) string {
	if p.Winner == nil {
		return "Nobody wins!"
	}
	return fmt.Sprintf("%s (%s) wins!", p.Winner.Name, p.Winner.Mark)
}
