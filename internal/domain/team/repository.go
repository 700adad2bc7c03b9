package team

import "context"

// Repository exposes static club reference data. A miss returns ok=false.
type Repository interface {
	ListByCompetition(ctx context.Context, competition string) ([]RosterEntry, bool, error)
	GetProfile(ctx context.Context, name string) (Profile, bool, error)
}
