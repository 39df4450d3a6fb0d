package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autotrader/internal/domain"
	"autotrader/internal/service"
)

type memoryPositionRepo struct {
	positions []domain.Position
}

func (r *memoryPositionRepo) Load(_ context.Context) ([]domain.Position, error) {
	return append([]domain.Position{}, r.positions...), nil
}

func (r *memoryPositionRepo) Save(_ context.Context, positions []domain.Position) error {
	r.positions = append([]domain.Position{}, positions...)
	return nil
}

type memorySettingsRepo struct {
	settings domain.EmailSettings
}

func (r *memorySettingsRepo) LoadEmailSettings(_ context.Context) (domain.EmailSettings, error) {
	return r.settings, nil
}

func (r *memorySettingsRepo) SaveEmailSettings(_ context.Context, settings domain.EmailSettings) error {
	r.settings = settings
	return nil
}

type fixedPrice struct{ price float64 }

func (f fixedPrice) NextPrice(_ context.Context, _ *domain.Position) (float64, error) {
	return f.price, nil
}

func newTestServer(t *testing.T) (*echo.Echo, *memorySettingsRepo) {
	t.Helper()

	log := zap.NewNop()
	watchlist := service.NewWatchlistService([]string{"BTC", "AAVE", "FTM"})
	feed := service.NewFeedService(nil, watchlist, log)
	ledger := service.NewLedgerService(&memoryPositionRepo{}, fixedPrice{price: 100}, log)
	settingsRepo := &memorySettingsRepo{}

	e := echo.New()
	SetupRoutes(e, &RouterConfig{
		EntryHandler:    NewEntryHandler(feed),
		ExitHandler:     NewExitHandler(ledger),
		CoinsHandler:    NewCoinsHandler(watchlist),
		SettingsHandler: NewSettingsHandler(settingsRepo),
	})
	return e, settingsRepo
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
}

func TestGetEntryServesFallbackWhenUnconfigured(t *testing.T) {
	e, _ := newTestServer(t)

	// No backend configured: the first refresh installs the sample data.
	rec := doJSON(e, http.MethodPost, "/api/entry/refresh", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	// The refresh goroutine for a nil fetcher completes without I/O, but
	// poll the snapshot to avoid relying on scheduling.
	var data struct {
		Swing    []map[string]interface{} `json:"swing"`
		Degraded bool                     `json:"degraded"`
		Notice   string                   `json:"notice"`
	}
	for i := 0; i < 200; i++ {
		rec = doJSON(e, http.MethodGet, "/api/entry", "")
		require.Equal(t, http.StatusOK, rec.Code)
		decodeData(t, rec, &data)
		if data.Degraded {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	assert.True(t, data.Degraded)
	assert.Contains(t, data.Notice, "sample data")
	// Only allowlisted coins survive the filter.
	for _, row := range data.Swing {
		assert.Contains(t, []string{"BTC", "AAVE", "FTM"}, row["pair"])
	}
}

func TestAddListAndRemovePosition(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/exit", `{
		"pair": "btc",
		"side": "LONG",
		"mode": "SWING",
		"entry_price": "100",
		"gain_pct": "10",
		"leverage": "5"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID          string  `json:"id"`
		Pair        string  `json:"pair"`
		TargetPrice float64 `json:"target_price"`
		Status      string  `json:"status"`
	}
	decodeData(t, rec, &created)
	assert.Equal(t, "BTC", created.Pair)
	assert.Equal(t, 110.0, created.TargetPrice)
	assert.Equal(t, domain.StatusOpen, created.Status)

	rec = doJSON(e, http.MethodGet, "/api/exit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []struct {
		ID string `json:"id"`
	}
	decodeData(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	rec = doJSON(e, http.MethodDelete, "/api/exit/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Removing again still succeeds.
	rec = doJSON(e, http.MethodDelete, "/api/exit/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/exit", "")
	decodeData(t, rec, &listed)
	assert.Empty(t, listed)
}

func TestAddPositionValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/exit", `{
		"pair": "BTC",
		"side": "LONG",
		"mode": "SWING",
		"entry_price": "abc",
		"gain_pct": "10",
		"leverage": "5"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "entry price")
}

func TestRemovePositionRejectsBadID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodDelete, "/api/exit/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClosePosition(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/exit", `{
		"pair": "ETH",
		"side": "SHORT",
		"mode": "POSITIONAL",
		"entry_price": "200",
		"target_price": "180",
		"leverage": "2"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeData(t, rec, &created)

	rec = doJSON(e, http.MethodPost, "/api/exit/"+created.ID+"/close", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/exit", "")
	var listed []struct {
		Status string `json:"status"`
	}
	decodeData(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.StatusClosed, listed[0].Status)
}

func TestCoinsRoundTrip(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPut, "/api/coins", `{"coins": [" sol ", "ada", "SOL"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var coins struct {
		Coins []string `json:"coins"`
	}
	decodeData(t, rec, &coins)
	assert.Equal(t, []string{"SOL", "ADA"}, coins.Coins)

	rec = doJSON(e, http.MethodGet, "/api/coins", "")
	decodeData(t, rec, &coins)
	assert.Equal(t, []string{"SOL", "ADA"}, coins.Coins)
}

func TestEmailSettingsRedactsPassword(t *testing.T) {
	e, repo := newTestServer(t)

	rec := doJSON(e, http.MethodPut, "/api/settings/email", `{
		"fromEmail": "alerts@example.com",
		"appPassword": "secret-app-password",
		"toEmail": "me@example.com"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "secret-app-password", repo.settings.AppPassword)

	rec = doJSON(e, http.MethodGet, "/api/settings/email", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-app-password")

	var out struct {
		FromEmail   string `json:"fromEmail"`
		HasPassword bool   `json:"hasPassword"`
	}
	decodeData(t, rec, &out)
	assert.Equal(t, "alerts@example.com", out.FromEmail)
	assert.True(t, out.HasPassword)
}

func TestEmailSettingsRequiresAddresses(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPut, "/api/settings/email", `{"appPassword": "x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
