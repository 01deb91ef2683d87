package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
)

//go:generate mockgen -source=ids.go -destination=ids_mock.go -package=services

// ErrIDSpaceExhausted is returned when no free identifier was found.
var ErrIDSpaceExhausted = errors.New("could not generate a unique id")

const defaultIDAttempts = 8

// IDProber reports whether an identifier is already in use.
type IDProber interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// IDGenerator hands out random identifiers that no prober knows about.
type IDGenerator struct {
	newID    func() string
	probers  []IDProber
	attempts int
}

// NewIDGenerator returns a generator producing uuid strings unique across probers.
func NewIDGenerator(probers ...IDProber) *IDGenerator {
	return &IDGenerator{
		newID:    uuid.NewString,
		probers:  probers,
		attempts: defaultIDAttempts,
	}
}

// NewCodeGenerator returns a generator producing 32 hex character codes.
func NewCodeGenerator(probers ...IDProber) *IDGenerator {
	g := NewIDGenerator(probers...)
	g.newID = NewHexID
	return g
}

// NewHexID returns a random 128-bit identifier as 32 lowercase hex characters.
func NewHexID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Next returns a fresh identifier. Probing runs on the caller's context, so
// inside an atomic unit it sees the unit's own writes.
func (g *IDGenerator) Next(ctx context.Context) (string, error) {
	for i := 0; i < g.attempts; i++ {
		id := g.newID()

		taken, err := g.taken(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to probe id", "err", err)
			return "", err
		}
		if !taken {
			return id, nil
		}
		logger.Log.Warnw("generated id collided, retrying", "attempt", i+1)
	}
	return "", ErrIDSpaceExhausted
}

func (g *IDGenerator) taken(ctx context.Context, id string) (bool, error) {
	for _, p := range g.probers {
		ok, err := p.Exists(ctx, id)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
