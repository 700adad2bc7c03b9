package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Gedeon250/football-api-app/internal/domain/competition"
	"github.com/Gedeon250/football-api-app/internal/domain/match"
	"github.com/Gedeon250/football-api-app/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	query := r.URL.Query()
	req := competitionQueryRequest{
		Search:  strings.TrimSpace(query.Get("search")),
		Country: strings.TrimSpace(query.Get("country")),
		Sort:    strings.ToLower(strings.TrimSpace(query.Get("sort"))),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.provider.FetchCompetitions(ctx)
	filtered := competition.Apply(result.Items, competition.Query{
		Search:  req.Search,
		Country: req.Country,
		Sort:    competition.ParseSortKey(req.Sort),
	})

	items := make([]competitionDTO, 0, len(filtered))
	for _, item := range filtered {
		items = append(items, competitionToDTO(item))
	}

	out := competitionListDTO{
		Items:     items,
		Countries: competition.Countries(result.Items),
		Fallback:  result.Fallback,
		Reason:    string(result.Reason),
		Source:    result.Source(),
	}
	if !result.FetchedAt.IsZero() {
		fetchedAt := result.FetchedAt.UTC()
		out.FetchedAt = &fetchedAt
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.matchList(h.provider.FetchLiveMatches(ctx)))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.matchList(h.provider.FetchUpcomingMatches(ctx)))
}

func (h *Handler) ListCompetitionTeams(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitionTeams", competitionAttr(name))
	defer span.End()

	result, err := h.reference.CompetitionTeams(ctx, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "list competition teams failed", "competition", name, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !result.Found {
		writeError(ctx, w, fmt.Errorf("%w: no teams for competition %q", usecase.ErrNotFound, name))
		return
	}

	teams := make([]rosterEntryDTO, 0, len(result.Teams))
	for _, item := range result.Teams {
		teams = append(teams, rosterEntryToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, competitionTeamsDTO{
		Competition: result.DisplayName,
		Teams:       teams,
	})
}

func (h *Handler) GetTeamProfile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamProfile", teamAttr(name))
	defer span.End()

	result, err := h.reference.TeamProfile(ctx, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "get team profile failed", "team", name, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !result.Found {
		writeError(ctx, w, fmt.Errorf("%w: team %q", usecase.ErrNotFound, name))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamProfileToDTO(result.Profile))
}

func (h *Handler) matchList(result usecase.Result[match.Match]) matchListDTO {
	rows := usecase.MatchRows(result.Items, h.provider.Location())
	items := make([]matchDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, matchRowToDTO(row))
	}

	return matchListDTO{
		Items:    items,
		Fallback: result.Fallback,
		Reason:   string(result.Reason),
		Source:   result.Source(),
	}
}
