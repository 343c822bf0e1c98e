package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/talklens/backend/internal/config"
	"github.com/zhouzirui/talklens/backend/internal/handler/analysis"
	"github.com/zhouzirui/talklens/backend/internal/handler/counter"
	"github.com/zhouzirui/talklens/backend/internal/handler/types"
	middlewarePkg "github.com/zhouzirui/talklens/backend/internal/middleware"
	relationshipModel "github.com/zhouzirui/talklens/backend/internal/model/relationship"
	counterService "github.com/zhouzirui/talklens/backend/internal/service/counter"
	"github.com/zhouzirui/talklens/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg *config.Config, analyzer analysis.Analyzer, typeStore relationshipModel.Store, counterSvc counterService.Counter, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(cfg.Server.AllowedOrigins))

	// Create handlers
	analysisHandler := analysis.New(analyzer, cfg.Analysis.MaxUploadBytes, cfg.Server.WebSocket, logger)
	typesHandler := types.New(typeStore)
	counterHandler := counter.New(counterSvc, cfg.Counter.DailyWindow, logger)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		analysisHandler.RegisterRoutes(api)
		typesHandler.RegisterRoutes(api)
		counterHandler.RegisterRoutes(api)
	})

	return r
}
