package console

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"ctchen222/tictactoe-minimax/internal/events"
	"ctchen222/tictactoe-minimax/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvent(t *testing.T, eventType string, payload any) events.Event {
	t.Helper()
	e, err := events.New(eventType, "g-1", payload)
	require.NoError(t, err)
	return e
}

func TestFormatBoard(t *testing.T) {
	b, err := game.BoardFromString("X.. .O. ...")
	require.NoError(t, err)

	want := " X | 2 | 3 \n" +
		"---+---+---\n" +
		" 4 | O | 6 \n" +
		"---+---+---\n" +
		" 7 | 8 | 9 \n"
	assert.Equal(t, want, FormatBoard(b))
}

func TestRenderer_Text(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, game.PlayerX, false)
	ctx := context.Background()

	machine := events.PlayerInfo{Name: "Machine", Mark: game.PlayerO}
	human := events.PlayerInfo{Name: "Player", Mark: game.PlayerX}

	r.Notify(ctx, mustEvent(t, events.GameStarted, events.GameStartedPayload{
		Players: [2]events.PlayerInfo{machine, human},
		First:   machine,
	}))
	assert.True(t, strings.HasPrefix(out.String(), "Machine goes first.\n"))

	out.Reset()
	r.Notify(ctx, mustEvent(t, events.MoveMade, events.MoveMadePayload{Player: machine, Cell: 4, Ply: 1}))
	assert.True(t, strings.HasPrefix(out.String(), "Machine (O) takes cell 5.\n"))

	out.Reset()
	r.Notify(ctx, mustEvent(t, events.MoveRejected, events.MoveRejectedPayload{Player: human, Cell: 4, Reason: "cell already occupied"}))
	assert.Equal(t, "That move is not allowed: cell already occupied. Try again.\n", out.String())

	out.Reset()
	r.Notify(ctx, mustEvent(t, events.GameOver, events.GameOverPayload{Draw: true}))
	assert.Equal(t, "Nobody wins!\n", out.String())

	out.Reset()
	r.Notify(ctx, mustEvent(t, events.GameOver, events.GameOverPayload{Winner: &machine}))
	assert.Equal(t, "Machine (O) wins!\n", out.String())
}

func TestRenderer_JSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, game.PlayerX, true)

	e := mustEvent(t, events.GameOver, events.GameOverPayload{Draw: true, Moves: []int{0}})
	r.Notify(context.Background(), e)

	var got events.Event
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, events.GameOver, got.Type)
	assert.Equal(t, "g-1", got.GameID)
	assert.JSONEq(t, string(e.Payload), string(got.Payload))
}
