package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"

	"github.com/Gedeon250/football-api-app/internal/domain/competition"
	"github.com/Gedeon250/football-api-app/internal/domain/match"
	"github.com/Gedeon250/football-api-app/internal/platform/logging"
)

const (
	SampleDataNotice    = "Using sample data - Live API data will load when available."
	DegradedPageMessage = "Unable to load data. Showing sample competitions."

	degradedCompetitionCount = 5
)

var degradedCountries = []string{"England", "Spain", "Germany", "Italy", "France"}

// HomeDataProvider is the subset of DataProvider the home page needs.
type HomeDataProvider interface {
	FetchCompetitions(ctx context.Context) Result[competition.Competition]
	FetchLiveMatches(ctx context.Context) Result[match.Match]
	FetchUpcomingMatches(ctx context.Context) Result[match.Match]
	Location() *time.Location
}

type HomeQuery struct {
	Search  string
	Country string
	Sort    competition.SortKey
}

// MatchRow is a match prepared for display.
type MatchRow struct {
	HomeTeam    string
	AwayTeam    string
	Competition string
	Status      string
	StatusLabel string
	UTCDate     string
	Time        string
	Date        string
	HomeScore   *int
	AwayScore   *int
	IsLive      bool
}

func (r MatchRow) HasScore() bool {
	return r.HomeScore != nil && r.AwayScore != nil
}

type HomePage struct {
	Query           HomeQuery
	Competitions    []competition.Competition
	Countries       []string
	LiveMatches     []MatchRow
	UpcomingMatches []MatchRow

	Notice       string
	ErrorMessage string
	Degraded     bool

	CompetitionsSource string
	CompetitionsReason FallbackReason
	LiveFallback       bool
	UpcomingFallback   bool
}

type HomeService struct {
	provider  HomeDataProvider
	pool      *ants.Pool
	fallbacks func() []competition.Competition
	logger    *logging.Logger
}

// NewHomeService fans the three provider calls out on pool. fallbacks
// supplies the competitions shown on the degraded page.
func NewHomeService(provider HomeDataProvider, pool *ants.Pool, fallbacks func() []competition.Competition, logger *logging.Logger) *HomeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &HomeService{
		provider:  provider,
		pool:      pool,
		fallbacks: fallbacks,
		logger:    logger,
	}
}

// Build assembles the home page. It never fails: unexpected errors produce
// the degraded page.
func (s *HomeService) Build(ctx context.Context, query HomeQuery) HomePage {
	ctx, span := startUsecaseSpan(ctx, "usecase.HomeService.Build")
	defer span.End()

	var (
		competitions Result[competition.Competition]
		live         Result[match.Match]
		upcoming     Result[match.Match]
	)

	err := s.fanOut(ctx,
		func(ctx context.Context) { competitions = s.provider.FetchCompetitions(ctx) },
		func(ctx context.Context) { live = s.provider.FetchLiveMatches(ctx) },
		func(ctx context.Context) { upcoming = s.provider.FetchUpcomingMatches(ctx) },
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "build home page failed, serving degraded page", "error", err)
		return s.Degraded(query)
	}

	loc := s.provider.Location()
	page := HomePage{
		Query:              query,
		Competitions:       competition.Apply(competitions.Items, competition.Query{Search: query.Search, Country: query.Country, Sort: query.Sort}),
		Countries:          competition.Countries(competitions.Items),
		LiveMatches:        MatchRows(live.Items, loc),
		UpcomingMatches:    MatchRows(upcoming.Items, loc),
		CompetitionsSource: competitions.Source(),
		CompetitionsReason: competitions.Reason,
		LiveFallback:       live.Fallback,
		UpcomingFallback:   upcoming.Fallback,
	}
	if competitions.Fallback {
		page.Notice = SampleDataNotice
	}
	return page
}

// Degraded returns the minimal page shown when the home page cannot be built.
func (s *HomeService) Degraded(query HomeQuery) HomePage {
	var items []competition.Competition
	if s.fallbacks != nil {
		items = s.fallbacks()
	}
	if len(items) > degradedCompetitionCount {
		items = items[:degradedCompetitionCount]
	}

	countries := make([]string, len(degradedCountries))
	copy(countries, degradedCountries)

	return HomePage{
		Query:              query,
		Competitions:       items,
		Countries:          countries,
		LiveMatches:        []MatchRow{},
		UpcomingMatches:    []MatchRow{},
		ErrorMessage:       DegradedPageMessage,
		Degraded:           true,
		CompetitionsSource: SourceFallback,
	}
}

// fanOut runs every task on the pool and waits for all of them. A panic in
// any task, or a rejected submission, is returned as an error.
func (s *HomeService) fanOut(ctx context.Context, tasks ...func(context.Context)) error {
	var (
		wg      sync.WaitGroup
		catcher panics.Catcher
	)

	for _, task := range tasks {
		task := task
		wg.Add(1)
		run := func() {
			defer wg.Done()
			catcher.Try(func() { task(ctx) })
		}

		if s.pool == nil {
			go run()
			continue
		}
		if err := s.pool.Submit(run); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit home task to worker pool: %w", err)
		}
	}

	wg.Wait()
	if recovered := catcher.Recovered(); recovered != nil {
		return recovered.AsError()
	}
	return nil
}

// MatchRows prepares matches for display in loc.
func MatchRows(items []match.Match, loc *time.Location) []MatchRow {
	out := make([]MatchRow, 0, len(items))
	for _, item := range items {
		item = item.WithDefaults()
		out = append(out, MatchRow{
			HomeTeam:    item.HomeTeam,
			AwayTeam:    item.AwayTeam,
			Competition: item.Competition,
			Status:      item.Status,
			StatusLabel: match.StatusLabel(item.Status),
			UTCDate:     item.UTCDate,
			Time:        match.FormatTime(item.UTCDate, loc),
			Date:        match.FormatDate(item.UTCDate, loc),
			HomeScore:   item.HomeScore,
			AwayScore:   item.AwayScore,
			IsLive:      match.IsLive(item.Status),
		})
	}
	return out
}
