package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luckypick/powerball-backend/api/routes"
	"github.com/luckypick/powerball-backend/internal/config"
	"github.com/luckypick/powerball-backend/internal/handlers"
	"github.com/luckypick/powerball-backend/internal/models"
	"github.com/luckypick/powerball-backend/internal/repositories"
	"github.com/luckypick/powerball-backend/internal/repositories/memory"
	"github.com/luckypick/powerball-backend/internal/services"
	"github.com/luckypick/powerball-backend/pkg/powerball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full stack over the given repository, mirroring the
// wiring in cmd/api/main.go
func newTestRouter(t *testing.T, repo repositories.DrawResultRepository) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{AllowedHosts: []string{"localhost:3000"}},
	}
	resultsService := services.NewResultsService(repo, powerball.NewClient("", true))
	prizeService := services.NewPrizeService(repo)
	ticketService := services.NewTicketService(prizeService)

	return routes.SetupRouter(cfg, routes.HandlerDependencies{
		TicketHandler: handlers.NewTicketHandler(ticketService),
		DrawHandler:   handlers.NewDrawHandler(resultsService),
	})
}

func seededRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repo := memory.NewDrawResultRepository()
	err := repo.Create(context.Background(), &models.DrawResult{
		DrawDate:   time.Date(2017, 11, 9, 0, 0, 0, 0, time.UTC),
		WhiteBalls: []int{1, 2, 3, 4, 5},
		PowerBall:  1,
	})
	require.NoError(t, err)
	return newTestRouter(t, repo)
}

func checkTicket(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets/check", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const scenarioTicket = `{
	"picks": [
		{"whiteBalls": [1, 2, 3, 4, 5], "powerBall": 1},
		{"whiteBalls": [1, 2, 6, 4, 5], "powerBall": 1}
	],
	"drawDate": "2017-11-09"
}`

func TestCheckTicketEndToEnd(t *testing.T) {
	w := checkTicket(seededRouter(t), scenarioTicket)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Picks []struct {
			WhiteBalls []int           `json:"whiteBalls"`
			PowerBall  int             `json:"powerBall"`
			Prize      json.RawMessage `json:"prize"`
		} `json:"picks"`
		Summary struct {
			SummablePrizeTotal float64                  `json:"summablePrizeTotal"`
			WonGrandPrizeCount int                      `json:"wonGrandPrizeCount"`
			Errors             []map[string]interface{} `json:"errors"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Picks, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, body.Picks[0].WhiteBalls)
	assert.Equal(t, []int{1, 2, 6, 4, 5}, body.Picks[1].WhiteBalls)

	// First pick hit all five whiteballs plus the powerball
	assert.JSONEq(t,
		`{"won":true,"amount":"GRAND_PRIZE","whiteBalls":[1,2,3,4,5],"powerBall":1}`,
		string(body.Picks[0].Prize))
	// Second pick: four whiteballs plus the powerball
	assert.JSONEq(t,
		`{"won":true,"amount":50000,"whiteBalls":[1,2,4,5],"powerBall":1}`,
		string(body.Picks[1].Prize))

	assert.Equal(t, 50000.0, body.Summary.SummablePrizeTotal)
	assert.Equal(t, 1, body.Summary.WonGrandPrizeCount)
	assert.Empty(t, body.Summary.Errors)
}

func TestCheckTicketUnknownDrawDate(t *testing.T) {
	router := newTestRouter(t, memory.NewDrawResultRepository())

	w := checkTicket(router, scenarioTicket)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	picks := body["picks"].([]interface{})
	require.Len(t, picks, 2)
	for _, pick := range picks {
		assert.NotContains(t, pick.(map[string]interface{}), "prize")
	}

	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, 0.0, summary["summablePrizeTotal"])
	assert.Equal(t, 0.0, summary["wonGrandPrizeCount"])
	assert.Equal(t, []interface{}{map[string]interface{}{"drawDate": "NOT_FOUND"}}, summary["errors"])
}

func TestCheckTicketValidationFailure(t *testing.T) {
	w := checkTicket(seededRouter(t), `{
		"picks": [{"whiteBalls": [1, 1, 3, 4, 5], "powerBall": 1}],
		"drawDate": "2017-11-09"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, `"picks[0].whiteBalls" position 1 contains a duplicate value`, body["error"])
}

func TestCheckTicketFutureDrawDate(t *testing.T) {
	future := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	w := checkTicket(seededRouter(t), `{
		"picks": [{"whiteBalls": [1, 2, 3, 4, 5], "powerBall": 1}],
		"drawDate": "`+future+`"
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, `"drawDate" must be less than or equal to now`, body["error"])
}

func TestCheckTicketMalformedJSON(t *testing.T) {
	w := checkTicket(seededRouter(t), `{"picks": [`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// brokenRepo simulates a results store outage
type brokenRepo struct {
	repositories.DrawResultRepository
}

func (r *brokenRepo) FindByDate(ctx context.Context, date time.Time) (*models.DrawResult, error) {
	return nil, errors.New("store down")
}

func TestCheckTicketUpstreamFailure(t *testing.T) {
	router := newTestRouter(t, &brokenRepo{})

	w := checkTicket(router, scenarioTicket)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetDrawByDate(t *testing.T) {
	router := seededRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/draws/date/2017-11-09", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []interface{}{1.0, 2.0, 3.0, 4.0, 5.0}, body["whiteBalls"])
	assert.Equal(t, 1.0, body["powerBall"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/draws/date/2017-11-10", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/draws/date/not-a-date", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDrawCount(t *testing.T) {
	router := seededRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/draws/count", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["count"])
}
