package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"ctchen222/tictactoe-minimax/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrInvalidMark  = errors.New("self and opponent must be distinct player marks")
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")

	searchNodes, _    = meter.Int64Counter("bot.search.nodes", metric.WithDescription("Game tree nodes visited by the move selector"))
	searchDuration, _ = meter.Float64Histogram("bot.search.duration", metric.WithDescription("Time spent choosing a move"), metric.WithUnit("ms"))
)

// MoveScore is the minimax value of playing Index from the root position.
type MoveScore struct {
	Index int `json:"index"`
	Score int `json:"score"`
}

// Selector picks the computer player's move. It is not safe for concurrent
// use because the random source is not.
type Selector struct {
	rand *rand.Rand
}

// NewSelector creates a Selector that breaks ties with r. A nil r gets a
// generator seeded from the global source.
func NewSelector(r *rand.Rand) *Selector {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{rand: r}
}

// NewSeededSelector creates a Selector whose tie-breaking is reproducible.
func NewSeededSelector(seed uint64) *Selector {
	return NewSelector(rand.New(rand.NewPCG(seed, seed)))
}

// Rank scores every legal move for self, in ascending cell order.
func (s *Selector) Rank(ctx context.Context, b game.Board, self, opponent game.PlayerMark) ([]MoveScore, error) {
	_, span := tracer.Start(ctx, "bot.Rank", trace.WithAttributes(
		attribute.String("bot.mark", string(self)),
	))
	defer span.End()

	scores, nodes, err := rank(b, self, opponent)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not rank moves")
		return nil, err
	}
	span.SetAttributes(attribute.Int64("bot.nodes", nodes))
	return scores, nil
}

// ChooseMove returns the best cell for self. Equally scored cells are chosen
// uniformly at random.
func (s *Selector) ChooseMove(ctx context.Context, b game.Board, self, opponent game.PlayerMark) (int, error) {
	ctx, span := tracer.Start(ctx, "bot.ChooseMove", trace.WithAttributes(
		attribute.String("bot.mark", string(self)),
		attribute.String("board", b.String()),
	))
	defer span.End()

	start := time.Now()
	scores, nodes, err := rank(b, self, opponent)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not rank moves")
		return -1, err
	}
	elapsed := time.Since(start)

	best := scores[0].Score
	for _, ms := range scores[1:] {
		if ms.Score > best {
			best = ms.Score
		}
	}
	candidates := make([]int, 0, len(scores))
	for _, ms := range scores {
		if ms.Score == best {
			candidates = append(candidates, ms.Index)
		}
	}
	move := candidates[s.rand.IntN(len(candidates))]

	attrs := metric.WithAttributes(attribute.String("bot.mark", string(self)))
	searchNodes.Add(ctx, nodes, attrs)
	searchDuration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)

	span.SetAttributes(
		attribute.Int("bot.candidates", len(scores)),
		attribute.Int("bot.ties", len(candidates)),
		attribute.Int("bot.move", move),
		attribute.Int("bot.score", best),
		attribute.Int64("bot.nodes", nodes),
	)
	slog.DebugContext(ctx, "Bot chose move", "mark", self, "move", move, "score", best, "ties", len(candidates), "nodes", nodes, "elapsed", elapsed)

	return move, nil
}

func rank(b game.Board, self, opponent game.PlayerMark) ([]MoveScore, int64, error) {
	candidates := b.EmptyIndices()
	if len(candidates) == 0 {
		return nil, 0, fmt.Errorf("rank moves for %s: %w", self, ErrNoLegalMoves)
	}
	if !self.Valid() || !opponent.Valid() || self == opponent {
		return nil, 0, fmt.Errorf("rank moves for %q against %q: %w", self, opponent, ErrInvalidMark)
	}

	var s searcher
	scores := make([]MoveScore, 0, len(candidates))
	for _, idx := range candidates {
		scores = append(scores, MoveScore{
			Index: idx,
			Score: s.evaluate(b, idx, self, self, opponent, 0),
		})
	}
	return scores, s.nodes, nil
}
