package relay

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type entradaResponse struct {
	Swing      []Row `json:"swing"`
	Posicional []Row `json:"posicional"`
}

// NewRouter builds the relay HTTP handler. The entrada endpoint always
// answers 200: a source failure is logged and served as empty arrays so
// the panel degrades on its own terms instead of seeing relay errors.
func NewRouter(source Source, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/api/entrada", handleEntrada(source, log))

	return r
}

func handleEntrada(source Source, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		swing, posicional, err := source.Fetch(r.Context())
		if err != nil {
			log.Error("entry source fetch failed", zap.Error(err))
			swing, posicional = nil, nil
		}
		if swing == nil {
			swing = []Row{}
		}
		if posicional == nil {
			posicional = []Row{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if err := json.NewEncoder(w).Encode(entradaResponse{Swing: swing, Posicional: posicional}); err != nil {
			log.Error("failed to encode entrada response", zap.Error(err))
		}
	}
}
