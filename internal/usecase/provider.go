package usecase

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/Gedeon250/football-api-app/internal/domain/competition"
	"github.com/Gedeon250/football-api-app/internal/domain/match"
	"github.com/Gedeon250/football-api-app/internal/platform/cache"
	"github.com/Gedeon250/football-api-app/internal/platform/logging"
	"github.com/Gedeon250/football-api-app/internal/platform/resilience"
)

const (
	DefaultCompetitionsTTL = 300 * time.Second
	DefaultLiveLimit       = 10
	DefaultUpcomingLimit   = 5
	UpcomingWindowDays     = 7

	dateLayout = "2006-01-02"

	OperationCompetitions = "competitions"
	OperationLive         = "live_matches"
	OperationUpcoming     = "upcoming_matches"
)

// FootballDataSource is the remote competitions and matches API.
type FootballDataSource interface {
	HasCredential() bool
	ListCompetitions(ctx context.Context) ([]competition.Competition, error)
	ListMatches(ctx context.Context, dateFrom, dateTo string) ([]match.Match, error)
}

// FallbackSource supplies the sample datasets served when live data is unavailable.
type FallbackSource interface {
	Competitions() []competition.Competition
	LiveMatches(now time.Time) []match.Match
	UpcomingMatches(now time.Time) []match.Match
}

// ResultRecorder counts provider outcomes.
type ResultRecorder interface {
	RecordProviderResult(operation, source, reason string)
}

type ProviderConfig struct {
	CompetitionsTTL time.Duration
	Location        *time.Location
	LiveLimit       int
	UpcomingLimit   int
}

// DataProvider fetches live data and degrades to sample data on any failure.
// None of its operations return an error.
type DataProvider struct {
	upstream FootballDataSource
	fallback FallbackSource
	cache    *cache.Slot[[]competition.Competition]
	cfg      ProviderConfig
	now      func() time.Time
	logger   *logging.Logger
	recorder ResultRecorder
}

func NewDataProvider(
	upstream FootballDataSource,
	fallback FallbackSource,
	cfg ProviderConfig,
	logger *logging.Logger,
	recorder ResultRecorder,
) *DataProvider {
	if cfg.CompetitionsTTL <= 0 {
		cfg.CompetitionsTTL = DefaultCompetitionsTTL
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.LiveLimit <= 0 {
		cfg.LiveLimit = DefaultLiveLimit
	}
	if cfg.UpcomingLimit <= 0 {
		cfg.UpcomingLimit = DefaultUpcomingLimit
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DataProvider{
		upstream: upstream,
		fallback: fallback,
		cache:    cache.NewSlot[[]competition.Competition](cfg.CompetitionsTTL).WithCacheIf(hasCompetitions),
		cfg:      cfg,
		now:      time.Now,
		logger:   logger,
		recorder: recorder,
	}
}

// hasCompetitions keeps an empty upstream list out of the cache so the next
// request asks again.
func hasCompetitions(items []competition.Competition) bool {
	return len(items) > 0
}

// WithClock replaces the time source used for the cache and date windows.
func (p *DataProvider) WithClock(now func() time.Time) *DataProvider {
	if now != nil {
		p.now = now
		p.cache.WithClock(now)
	}
	return p
}

func (p *DataProvider) Location() *time.Location {
	return p.cfg.Location
}

func (p *DataProvider) FetchCompetitions(ctx context.Context) Result[competition.Competition] {
	ctx, span := startUsecaseSpan(ctx, "usecase.DataProvider.FetchCompetitions")
	defer span.End()

	items, fetchedAt, cached, err := p.cache.Load(ctx, p.upstream.ListCompetitions)
	if err != nil {
		result := degrade(ctx, p, OperationCompetitions, p.fallback.Competitions(), classifyFailure(err), err)
		annotateResultSpan(span, true, result.Reason, len(result.Items))
		return result
	}

	result := Result[competition.Competition]{
		Items:     copyOf(items),
		Cached:    cached,
		FetchedAt: fetchedAt,
	}
	p.record(OperationCompetitions, result.Source(), result.Reason)
	annotateResultSpan(span, false, ReasonNone, len(result.Items))
	return result
}

func (p *DataProvider) FetchLiveMatches(ctx context.Context) Result[match.Match] {
	ctx, span := startUsecaseSpan(ctx, "usecase.DataProvider.FetchLiveMatches")
	defer span.End()

	now := p.now()
	if !p.upstream.HasCredential() {
		result := degrade(ctx, p, OperationLive, p.fallback.LiveMatches(now), ReasonMissingCredential, nil)
		annotateResultSpan(span, true, result.Reason, len(result.Items))
		return result
	}

	today := now.In(p.cfg.Location).Format(dateLayout)
	items, err := p.upstream.ListMatches(ctx, today, today)
	if err != nil {
		result := degrade(ctx, p, OperationLive, p.fallback.LiveMatches(now), classifyFailure(err), err)
		annotateResultSpan(span, true, result.Reason, len(result.Items))
		return result
	}

	result := Result[match.Match]{Items: limit(items, p.cfg.LiveLimit), FetchedAt: now}
	p.record(OperationLive, result.Source(), result.Reason)
	annotateResultSpan(span, false, ReasonNone, len(result.Items))
	return result
}

func (p *DataProvider) FetchUpcomingMatches(ctx context.Context) Result[match.Match] {
	ctx, span := startUsecaseSpan(ctx, "usecase.DataProvider.FetchUpcomingMatches")
	defer span.End()

	now := p.now()
	if !p.upstream.HasCredential() {
		result := degrade(ctx, p, OperationUpcoming, p.fallback.UpcomingMatches(now), ReasonMissingCredential, nil)
		annotateResultSpan(span, true, result.Reason, len(result.Items))
		return result
	}

	local := now.In(p.cfg.Location)
	dateFrom := local.AddDate(0, 0, 1).Format(dateLayout)
	dateTo := local.AddDate(0, 0, UpcomingWindowDays).Format(dateLayout)

	items, err := p.upstream.ListMatches(ctx, dateFrom, dateTo)
	if err != nil {
		result := degrade(ctx, p, OperationUpcoming, p.fallback.UpcomingMatches(now), classifyFailure(err), err)
		annotateResultSpan(span, true, result.Reason, len(result.Items))
		return result
	}
	if len(items) == 0 {
		result := degrade(ctx, p, OperationUpcoming, p.fallback.UpcomingMatches(now), ReasonEmptyResult, nil)
		annotateResultSpan(span, true, result.Reason, len(result.Items))
		return result
	}

	result := Result[match.Match]{Items: limit(items, p.cfg.UpcomingLimit), FetchedAt: now}
	p.record(OperationUpcoming, result.Source(), result.Reason)
	annotateResultSpan(span, false, ReasonNone, len(result.Items))
	return result
}

// InvalidateCompetitions drops the cached competition list.
func (p *DataProvider) InvalidateCompetitions() {
	p.cache.Clear()
}

func (p *DataProvider) record(operation, source string, reason FallbackReason) {
	if p.recorder == nil {
		return
	}
	p.recorder.RecordProviderResult(operation, source, string(reason))
}

func (p *DataProvider) logFallback(ctx context.Context, operation string, reason FallbackReason, cause error) {
	if reason == ReasonMissingCredential {
		p.logger.DebugContext(ctx, "serving sample data", "operation", operation, "reason", string(reason))
		return
	}
	args := []any{"operation", operation, "reason", string(reason)}
	if cause != nil {
		args = append(args, "error", cause)
	}
	p.logger.WarnContext(ctx, "football data unavailable, serving sample data", args...)
}

func degrade[T any](ctx context.Context, p *DataProvider, operation string, items []T, reason FallbackReason, cause error) Result[T] {
	p.logFallback(ctx, operation, reason, cause)
	p.record(operation, SourceFallback, reason)
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Items:    items,
		Fallback: true,
		Reason:   reason,
		Cause:    cause,
	}
}

func classifyFailure(err error) FallbackReason {
	switch {
	case crerr.Is(err, resilience.ErrCircuitOpen):
		return ReasonCircuitOpen
	case crerr.Is(err, ErrUpstreamStatus):
		return ReasonUpstreamStatus
	case crerr.Is(err, ErrUpstreamPayload):
		return ReasonMalformedPayload
	default:
		return ReasonUpstreamUnreachable
	}
}

func limit[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > n {
		items = items[:n]
	}
	return copyOf(items)
}

func copyOf[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
