package httpapi

import (
	"net/http"
	"strings"

	"github.com/Gedeon250/football-api-app/internal/domain/competition"
	"github.com/Gedeon250/football-api-app/internal/usecase"
)

// HomePage always answers 200: build failures, render failures and panics
// all end in a degraded page.
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HomePage")
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.ErrorContext(ctx, "home page panic recovered", "panic", rec)
			writeMinimalPage(w, http.StatusOK)
		}
	}()

	view := h.homeView(r)
	view.Page = h.home.Build(ctx, view.Page.Query)

	if err := h.pages.render(ctx, w, http.StatusOK, pageIndex, view); err != nil {
		h.logger.ErrorContext(ctx, "render home page failed", "error", err)

		view.Page = h.home.Degraded(view.Page.Query)
		if err := h.pages.render(ctx, w, http.StatusOK, pageIndex, view); err != nil {
			h.logger.ErrorContext(ctx, "render degraded home page failed", "error", err)
			writeMinimalPage(w, http.StatusOK)
		}
	}
}

func (h *Handler) CompetitionPage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompetitionPage", competitionAttr(name))
	defer span.End()

	result, err := h.reference.CompetitionTeams(ctx, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "load competition page failed", "competition", name, "error", err)
		writeMinimalPage(w, http.StatusInternalServerError)
		return
	}

	if err := h.pages.render(ctx, w, http.StatusOK, pageCompetition, result); err != nil {
		h.logger.ErrorContext(ctx, "render competition page failed", "competition", name, "error", err)
		writeMinimalPage(w, http.StatusInternalServerError)
	}
}

func (h *Handler) TeamPage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamPage", teamAttr(name))
	defer span.End()

	result, err := h.reference.TeamProfile(ctx, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "load team page failed", "team", name, "error", err)
		writeMinimalPage(w, http.StatusInternalServerError)
		return
	}

	if err := h.pages.render(ctx, w, http.StatusOK, pageTeam, result); err != nil {
		h.logger.ErrorContext(ctx, "render team page failed", "team", name, "error", err)
		writeMinimalPage(w, http.StatusInternalServerError)
	}
}

// homeView reads the home page query. Values that fail validation fall back
// to their defaults; an unrecognised sort keeps the source order.
func (h *Handler) homeView(r *http.Request) homeView {
	query := r.URL.Query()
	req := competitionQueryRequest{
		Search:  strings.TrimSpace(query.Get("search")),
		Country: strings.TrimSpace(query.Get("country")),
		Sort:    strings.ToLower(strings.TrimSpace(query.Get("sort"))),
	}

	if err := h.validator.StructCtx(r.Context(), req); err != nil {
		fields := invalidFields(err)
		if _, bad := fields["Search"]; bad {
			req.Search = ""
		}
		if _, bad := fields["Country"]; bad {
			req.Country = ""
		}
		h.logger.DebugContext(r.Context(), "home page query adjusted", "error", err)
	}

	currentSort := req.Sort
	if currentSort == "" {
		currentSort = string(competition.DefaultSort)
	}

	return homeView{
		Page: usecase.HomePage{Query: usecase.HomeQuery{
			Search:  req.Search,
			Country: req.Country,
			Sort:    competition.ParseSortKey(req.Sort),
		}},
		CurrentSearch:  req.Search,
		CurrentSort:    currentSort,
		CurrentCountry: req.Country,
	}
}
