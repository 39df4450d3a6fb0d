package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1.22, parseNumber("1,22"))
	assert.Equal(t, 33.008, parseNumber("33.008"))
	assert.Equal(t, 7.0, parseNumber(" 7 "))
	assert.Zero(t, parseNumber(""))
	assert.Zero(t, parseNumber("abc"))
	assert.Zero(t, parseNumber("NaN"))
}

func TestMapRow(t *testing.T) {
	row := mapRow([]string{" AAVE ", "short", "33,008", "0", "7,6", "59.25", "2025-10-06", "16:22"})

	assert.Equal(t, "AAVE", row.Par)
	assert.Equal(t, "SHORT", row.Sinal)
	assert.Equal(t, 33.008, row.Preco)
	assert.Equal(t, 7.6, row.GanhoPct)
	assert.Equal(t, 59.25, row.AssertPct)
	assert.Equal(t, "16:22", row.Hora)
}

func TestMapRowShortRowIsPadded(t *testing.T) {
	row := mapRow([]string{"BTC", "LONG"})

	assert.Equal(t, "BTC", row.Par)
	assert.Zero(t, row.Preco)
	assert.Empty(t, row.Hora)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entrada.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"swing": [
			{"par": "BTC", "sinal": "long", "preco": "101,5", "alvo": 120, "ganho": 2.5, "assert_pct": "60,1", "data": "2025-10-06", "hora": "16:22"}
		],
		"posicional": [
			{"par": "FTM", "sinal": "SHORT", "preco": 35.4, "ganho_pct": 7.6}
		]
	}`), 0o600))

	swing, posicional, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, swing, 1)
	assert.Equal(t, "LONG", swing[0].Sinal)
	assert.Equal(t, 101.5, swing[0].Preco)
	assert.Equal(t, 60.1, swing[0].AssertPct)
	// "ganho" is accepted as the gain alias.
	assert.Equal(t, 2.5, swing[0].GanhoPct)

	require.Len(t, posicional, 1)
	assert.Equal(t, 7.6, posicional[0].GanhoPct)
}

func TestFileSourceMissingFileIsError(t *testing.T) {
	_, _, err := NewFileSource("does-not-exist.json").Fetch(context.Background())
	assert.Error(t, err)
}

func TestEntradaAlwaysAnswers200(t *testing.T) {
	router := NewRouter(NewFileSource("does-not-exist.json"), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/entrada", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body entradaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Swing)
	assert.Empty(t, body.Posicional)
	assert.NotNil(t, body.Swing)
}

func TestEntradaServesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entrada.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"swing": [{"par": "BTC", "sinal": "LONG", "preco": 100}], "posicional": []}`), 0o600))

	router := NewRouter(NewFileSource(path), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/entrada", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body entradaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Swing, 1)
	assert.Equal(t, "BTC", body.Swing[0].Par)
}
