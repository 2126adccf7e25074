package player

//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/tictactoe-minimax/internal/game"
	"ctchen222/tictactoe-minimax/internal/validator"
)

var (
	ErrInvalidInput = errors.New("invalid move input")
	ErrInputClosed  = errors.New("input closed")
	ErrQuit         = errors.New("player quit")
)

// Player supplies moves to the turn controller.
type Player interface {
	Name() string
	Mark() game.PlayerMark
	// MakeMove returns the index of the cell to mark on b.
	MakeMove(ctx context.Context, b game.Board) (int, error)
}

// MoveChooser picks a cell for self on b.
type MoveChooser interface {
	ChooseMove(ctx context.Context, b game.Board, self, opponent game.PlayerMark) (int, error)
}

// Computer is a Player backed by a MoveChooser.
type Computer struct {
	name    string
	mark    game.PlayerMark
	chooser MoveChooser
}

// NewComputer creates a computer player.
func NewComputer(name string, mark game.PlayerMark, chooser MoveChooser) *Computer {
	return &Computer{name: name, mark: mark, chooser: chooser}
}

func (c *Computer) Name() string          { return c.name }
func (c *Computer) Mark() game.PlayerMark { return c.mark }

// MakeMove delegates to the chooser with the computer as perspective.
func (c *Computer) MakeMove(ctx context.Context, b game.Board) (int, error) {
	return c.chooser.ChooseMove(ctx, b, c.mark, c.mark.Opponent())
}

// MoveInput is a cell as typed by a person, numbered 1 to 9.
type MoveInput struct {
	Cell int `validate:"min=1,max=9"`
}

// Human is a Player reading cell numbers line by line.
type Human struct {
	name    string
	mark    game.PlayerMark
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHuman creates a player that prompts on out and reads answers from in.
func NewHuman(name string, mark game.PlayerMark, in io.Reader, out io.Writer) *Human {
	return &Human{
		name:    name,
		mark:    mark,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Name() string          { return h.name }
func (h *Human) Mark() game.PlayerMark { return h.mark }

// MakeMove prompts once and parses one line. It does not check whether the
// cell is free; placing the mark does.
func (h *Human) MakeMove(ctx context.Context, b game.Board) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	fmt.Fprintf(h.out, "%s (%s), choose a cell [1-9]: ", h.name, h.mark)
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return -1, fmt.Errorf("read move: %w", err)
		}
		return -1, ErrInputClosed
	}
	return ParseMove(h.scanner.Text())
}

// ParseMove converts a typed cell number (1-9) into a board index (0-8).
func ParseMove(line string) (int, error) {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return -1, ErrQuit
	}

	cell, err := strconv.Atoi(line)
	if err != nil {
		return -1, fmt.Errorf("%q is not a cell number: %w", line, ErrInvalidInput)
	}

	input := MoveInput{Cell: cell}
	if err := validator.GetValidator().Struct(input); err != nil {
		return -1, fmt.Errorf("cell %d: %w: %w", cell, ErrInvalidInput, err)
	}
	return input.Cell - 1, nil
}
