package roster

import (
	"context"

	"github.com/okay-you-very-pro/oyvp/internal/domain"
)

// StaticRepository serves the sample matchup from memory. It is the fallback
// when the roster database cannot be opened.
type StaticRepository struct{}

// NewStatic returns a StaticRepository.
func NewStatic() *StaticRepository {
	return &StaticRepository{}
}

// Matchup returns a fresh copy of the sample matchup.
func (s *StaticRepository) Matchup(ctx context.Context) (domain.Matchup, error) {
	if err := ctx.Err(); err != nil {
		return domain.Matchup{}, err
	}
	return SampleMatchup(), nil
}

// Close is a no-op.
func (s *StaticRepository) Close() error {
	return nil
}
