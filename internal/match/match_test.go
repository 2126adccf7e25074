package match

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"ctchen222/tictactoe-minimax/internal/bot"
	"ctchen222/tictactoe-minimax/internal/events"
	"ctchen222/tictactoe-minimax/internal/game"
	"ctchen222/tictactoe-minimax/internal/player"
	"ctchen222/tictactoe-minimax/internal/player/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Notify(_ context.Context, e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.events))
	for _, e := range r.events {
		types = append(types, e.Type)
	}
	return types
}

func scriptedPlayer(ctrl *gomock.Controller, name string, mark game.PlayerMark, cells ...int) *mocks.MockPlayer {
	p := mocks.NewMockPlayer(ctrl)
	p.EXPECT().Name().Return(name).AnyTimes()
	p.EXPECT().Mark().Return(mark).AnyTimes()

	calls := make([]any, 0, len(cells))
	for _, cell := range cells {
		calls = append(calls, p.EXPECT().MakeMove(gomock.Any(), gomock.Any()).Return(cell, nil))
	}
	gomock.InOrder(calls...)
	return p
}

func TestController_Win(t *testing.T) {
	ctrl := gomock.NewController(t)
	x := scriptedPlayer(ctrl, "Alice", game.PlayerX, 0, 1, 2)
	o := scriptedPlayer(ctrl, "Machine", game.PlayerO, 3, 4)
	rec := &recorder{}

	result, err := NewController(x, o, WithNotifier(rec)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.PlayerX, result.Winner)
	assert.Equal(t, "Alice", result.WinnerName)
	assert.False(t, result.Draw)
	assert.Equal(t, []int{0, 3, 1, 4, 2}, result.Moves)
	assert.True(t, result.Board.IsWon(game.PlayerX))
	_, err = uuid.Parse(result.GameID)
	assert.NoError(t, err)

	assert.Equal(t, []string{
		events.GameStarted,
		events.MoveMade, events.MoveMade, events.MoveMade, events.MoveMade, events.MoveMade,
		events.GameOver,
	}, rec.types())

	var over events.GameOverPayload
	require.NoError(t, rec.events[len(rec.events)-1].Decode(&over))
	require.NotNil(t, over.Winner)
	assert.Equal(t, "Alice", over.Winner.Name)
	assert.Equal(t, result.GameID, rec.events[0].GameID)
}

func TestController_Draw(t *testing.T) {
	ctrl := gomock.NewController(t)
	// X O X
	// X O O
	// O X X
	x := scriptedPlayer(ctrl, "Alice", game.PlayerX, 0, 2, 3, 7, 8)
	o := scriptedPlayer(ctrl, "Bob", game.PlayerO, 1, 4, 5, 6)

	result, err := NewController(x, o).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Draw)
	assert.Equal(t, game.None, result.Winner)
	assert.True(t, result.Board.IsFull())
}

func TestController_RepromptsAfterRejectedMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	x := scriptedPlayer(ctrl, "Alice", game.PlayerX, 0, 1, 2)
	// 0 is taken and 12 is off the board, both are asked again.
	o := scriptedPlayer(ctrl, "Bob", game.PlayerO, 0, 12, 3, 4)
	rec := &recorder{}

	result, err := NewController(x, o, WithNotifier(rec)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.PlayerX, result.Winner)

	types := rec.types()
	assert.Equal(t, events.MoveRejected, types[2])
	assert.Equal(t, events.MoveRejected, types[3])

	var rejected events.MoveRejectedPayload
	require.NoError(t, rec.events[2].Decode(&rejected))
	assert.Equal(t, 0, rejected.Cell)
	assert.Contains(t, rejected.Reason, game.ErrCellOccupied.Error())
}

func TestController_TooManyRejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	x := scriptedPlayer(ctrl, "Alice", game.PlayerX, 4)
	o := mocks.NewMockPlayer(ctrl)
	o.EXPECT().Name().Return("Bob").AnyTimes()
	o.EXPECT().Mark().Return(game.PlayerO).AnyTimes()
	o.EXPECT().MakeMove(gomock.Any(), gomock.Any()).Return(4, nil).Times(3)

	_, err := NewController(x, o, WithMaxRejections(3)).Run(context.Background())
	assert.ErrorIs(t, err, ErrTooManyRejections)
}

func TestController_PlayerQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	x := mocks.NewMockPlayer(ctrl)
	x.EXPECT().Name().Return("Alice").AnyTimes()
	x.EXPECT().Mark().Return(game.PlayerX).AnyTimes()
	x.EXPECT().MakeMove(gomock.Any(), gomock.Any()).Return(-1, player.ErrQuit)
	o := scriptedPlayer(ctrl, "Bob", game.PlayerO)

	_, err := NewController(x, o).Run(context.Background())
	assert.ErrorIs(t, err, player.ErrQuit)
}

func TestController_SameMark(t *testing.T) {
	ctrl := gomock.NewController(t)
	x := scriptedPlayer(ctrl, "Alice", game.PlayerX)
	o := scriptedPlayer(ctrl, "Bob", game.PlayerX)

	_, err := NewController(x, o).Run(context.Background())
	assert.ErrorIs(t, err, ErrSameMark)
}

func TestController_ComputerVsComputerDraws(t *testing.T) {
	x := player.NewComputer("Machine X", game.PlayerX, bot.NewSeededSelector(1))
	o := player.NewComputer("Machine O", game.PlayerO, bot.NewSeededSelector(2))

	result, err := NewController(x, o).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Draw)
	assert.Len(t, result.Moves, 9)
}

func TestController_HumanNeverBeatsComputer(t *testing.T) {
	// The human tries cells in ascending order; taken cells are rejected and
	// the next line is read, so nine lines are always enough.
	in := strings.NewReader("1\n2\n3\n4\n5\n6\n7\n8\n9\n")
	human := player.NewHuman("Player", game.PlayerX, in, io.Discard)
	machine := player.NewComputer("Machine", game.PlayerO, bot.NewSeededSelector(3))

	result, err := NewController(human, machine).Run(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, game.PlayerX, result.Winner)
}
