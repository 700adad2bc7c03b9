package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	sonic "github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"

	"github.com/Gedeon250/football-api-app/external/footballdata"
	"github.com/Gedeon250/football-api-app/internal/infrastructure/repository/memory"
	"github.com/Gedeon250/football-api-app/internal/platform/logging"
	"github.com/Gedeon250/football-api-app/internal/usecase"
)

type upstreamStub struct {
	competitionHits atomic.Int32
	matchHits       atomic.Int32
	competitions    string
	matches         string
	status          int
}

func (s *upstreamStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/competitions":
		s.competitionHits.Add(1)
		s.write(w, s.competitions)
	case "/matches":
		s.matchHits.Add(1)
		s.write(w, s.matches)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *upstreamStub) write(w http.ResponseWriter, body string) {
	if s.status != 0 && s.status != http.StatusOK {
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(`{"message":"denied"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func newTestRouter(t *testing.T, stub *upstreamStub, token string) http.Handler {
	t.Helper()

	upstream := httptest.NewServer(stub)
	t.Cleanup(upstream.Close)

	client := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL: upstream.URL,
		Token:   token,
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
	})
	provider := usecase.NewDataProvider(client, memory.NewFallbackRepository(), usecase.ProviderConfig{}, logging.NewNop(), nil)

	pool, err := ants.NewPool(3)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	home := usecase.NewHomeService(provider, pool, memory.SeedCompetitions, logging.NewNop())
	reference := usecase.NewReferenceService(memory.NewTeamRepository(memory.SeedRosters(), memory.SeedProfiles()))

	handler, err := NewHandler(provider, home, reference, logging.NewNop())
	require.NoError(t, err)

	return NewRouter(handler, logging.NewNop(), RouterConfig{})
}

func serve(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestHomePage_WithoutCredentialServesSampleData(t *testing.T) {
	stub := &upstreamStub{status: http.StatusForbidden}
	router := newTestRouter(t, stub, "")

	rec := serve(t, router, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))

	doc := document(t, rec)
	require.Equal(t, 13, doc.Find(".competition-card").Length())
	require.Equal(t, 3, doc.Find(".live-match").Length())
	require.Equal(t, 3, doc.Find(".upcoming-match").Length())
	require.Equal(t, 1, doc.Find(".live-match.is-live").Length())
	require.Equal(t, usecase.SampleDataNotice, strings.TrimSpace(doc.Find(".status-notice").Text()))
	require.Equal(t, 0, doc.Find(".error-message").Length())

	require.EqualValues(t, 0, stub.matchHits.Load())
	require.EqualValues(t, 1, stub.competitionHits.Load())
}

func TestHomePage_WithLiveData(t *testing.T) {
	stub := &upstreamStub{
		competitions: `{"competitions":[
			{"name":"Serie A","code":"SA","plan":"TIER_ONE","area":{"name":"Italy"}},
			{"name":"Premier League","code":"PL","plan":"TIER_ONE","area":{"name":"England"}}
		]}`,
		matches: `{"matches":[
			{"utcDate":"2026-10-16T19:45:00Z","status":"IN_PLAY","competition":{"name":"Serie A"},
			 "homeTeam":{"name":"Juventus"},"awayTeam":{"name":"Napoli"},"score":{"fullTime":{"home":1,"away":1}}}
		]}`,
	}
	router := newTestRouter(t, stub, "secret")

	rec := serve(t, router, "/?sort=name")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := document(t, rec)
	require.Equal(t, 0, doc.Find(".status-notice").Length())

	names := doc.Find(".competition-card .name").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	require.Equal(t, []string{"Premier League", "Serie A"}, names)

	live := doc.Find(".live-match")
	require.Equal(t, 1, live.Length())
	require.Equal(t, "1 - 1", strings.TrimSpace(live.Find(".score").Text()))
	require.Equal(t, "LIVE", strings.TrimSpace(live.Find(".status").Text()))
	require.Equal(t, "19:45", strings.TrimSpace(live.Find(".time").Text()))

	href, ok := doc.Find(".competition-card").First().Attr("href")
	require.True(t, ok)
	require.Equal(t, "/competition/premier-league", href)
}

func TestHomePage_FiltersAndResetsInvalidQuery(t *testing.T) {
	router := newTestRouter(t, &upstreamStub{status: http.StatusInternalServerError}, "")

	doc := document(t, serve(t, router, "/?country=england&sort=country"))
	require.Equal(t, 2, doc.Find(".competition-card").Length())
	require.Equal(t, 12, doc.Find(`select[name="country"] option`).Length())

	long := strings.Repeat("x", 101)
	doc = document(t, serve(t, router, "/?search="+long))
	require.Equal(t, 13, doc.Find(".competition-card").Length())
	value, _ := doc.Find(`input[name="search"]`).Attr("value")
	require.Empty(t, value)
}

func TestListCompetitions_JSON(t *testing.T) {
	router := newTestRouter(t, &upstreamStub{status: http.StatusForbidden}, "")

	rec := serve(t, router, "/v1/competitions?search=league&sort=name")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		APIVersion string             `json:"apiVersion"`
		Data       competitionListDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "2.0", body.APIVersion)
	require.True(t, body.Data.Fallback)
	require.Equal(t, string(usecase.ReasonUpstreamStatus), body.Data.Reason)
	require.Equal(t, usecase.SourceFallback, body.Data.Source)
	require.Len(t, body.Data.Items, 2)
	require.Equal(t, "Premier League", body.Data.Items[0].Name)
	require.Equal(t, "UEFA Champions League", body.Data.Items[1].Name)
	require.Len(t, body.Data.Countries, 11)
}

func TestListCompetitions_InvalidSortIsRejected(t *testing.T) {
	router := newTestRouter(t, &upstreamStub{status: http.StatusForbidden}, "")

	rec := serve(t, router, "/v1/competitions?sort=plan")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_ARGUMENT")
}

func TestListMatches_JSONWithoutCredential(t *testing.T) {
	stub := &upstreamStub{}
	router := newTestRouter(t, stub, "")

	for _, path := range []string{"/v1/matches/live", "/v1/matches/upcoming"} {
		rec := serve(t, router, path)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body struct {
			Data matchListDTO `json:"data"`
		}
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
		require.True(t, body.Data.Fallback, path)
		require.Equal(t, string(usecase.ReasonMissingCredential), body.Data.Reason, path)
		require.Len(t, body.Data.Items, 3, path)
	}
	require.EqualValues(t, 0, stub.matchHits.Load())
}

func TestReferenceEndpoints_JSON(t *testing.T) {
	router := newTestRouter(t, &upstreamStub{}, "")

	rec := serve(t, router, "/v1/competitions/premier-league/teams")
	require.Equal(t, http.StatusOK, rec.Code)
	var teams struct {
		Data competitionTeamsDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &teams))
	require.Equal(t, "Premier League", teams.Data.Competition)
	require.Len(t, teams.Data.Teams, 6)

	rec = serve(t, router, "/v1/teams/BAYERN%20MUNICH")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile struct {
		Data teamProfileDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &profile))
	require.Equal(t, "Die Bayern", profile.Data.Nickname)

	rec = serve(t, router, "/v1/teams/tottenham")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NOT_FOUND")

	rec = serve(t, router, "/v1/competitions/eredivisie/teams")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompetitionPage(t *testing.T) {
	router := newTestRouter(t, &upstreamStub{}, "")

	rec := serve(t, router, "/competition/la-liga")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := document(t, rec)
	require.Equal(t, "La Liga", strings.TrimSpace(doc.Find(".competition-name").Text()))
	require.Equal(t, 6, doc.Find(".team-card").Length())
	require.Equal(t, "Santiago Bernabéu", strings.TrimSpace(doc.Find(".team-card .stadium").First().Text()))

	rec = serve(t, router, "/competition/eredivisie")
	require.Equal(t, http.StatusOK, rec.Code)
	doc = document(t, rec)
	require.Equal(t, 0, doc.Find(".team-card").Length())
	require.Equal(t, 1, doc.Find(".empty").Length())
}

func TestTeamPage(t *testing.T) {
	router := newTestRouter(t, &upstreamStub{}, "")

	for _, path := range []string{"/team/real-madrid", "/team/Real%20Madrid"} {
		rec := serve(t, router, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		doc := document(t, rec)
		require.Equal(t, "Los Blancos", strings.TrimSpace(doc.Find(".team-profile .nickname").Text()), path)
	}

	rec := serve(t, router, "/team/unknown-fc")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := document(t, rec)
	require.Equal(t, 0, doc.Find(".team-profile").Length())
	require.Contains(t, doc.Find(".empty").Text(), "unknown-fc")
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &upstreamStub{}, "")

	rec := serve(t, router, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = serve(t, router, "/metrics")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecoverPanic_ByPath(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/competitions", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/team/liverpool", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), usecase.DegradedPageMessage)
}

func TestPageRenderer_FailedRenderWritesNothing(t *testing.T) {
	pages, err := newPageRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = pages.render(t.Context(), rec, http.StatusOK, pageTeam, struct{}{})
	require.Error(t, err)
	require.Equal(t, 0, rec.Body.Len())
	require.Empty(t, rec.Header().Get("Content-Type"))
}
