package memory

import (
	"time"

	"github.com/Gedeon250/football-api-app/internal/domain/competition"
	"github.com/Gedeon250/football-api-app/internal/domain/match"
)

// FallbackRepository serves the sample datasets used when live data is
// unavailable. Every call returns a fresh copy.
type FallbackRepository struct {
	competitions []competition.Competition
}

func NewFallbackRepository() *FallbackRepository {
	return &FallbackRepository{competitions: SeedCompetitions()}
}

func (r *FallbackRepository) Competitions() []competition.Competition {
	out := make([]competition.Competition, len(r.competitions))
	copy(out, r.competitions)
	return out
}

func (r *FallbackRepository) LiveMatches(now time.Time) []match.Match {
	return SeedLiveMatches(now)
}

func (r *FallbackRepository) UpcomingMatches(now time.Time) []match.Match {
	return SeedUpcomingMatches(now)
}
