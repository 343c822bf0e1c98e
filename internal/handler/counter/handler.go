package counter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/talklens/backend/internal/service/counter"
	"github.com/zhouzirui/talklens/backend/pkg/utils"
)

// Handler 解析次数统计的HTTP处理器
type Handler struct {
	counter counter.Counter
	window  int
	log     zerolog.Logger
}

// New 创建计数处理器，window 为 daily 序列的天数
func New(c counter.Counter, window int, logger zerolog.Logger) *Handler {
	if window <= 0 {
		window = 30
	}
	return &Handler{
		counter: c,
		window:  window,
		log:     logger.With().Str("component", "counter-handler").Logger(),
	}
}

// RegisterRoutes 注册计数相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analytics", func(ar chi.Router) {
		ar.Get("/count", h.handleGetCount)
		ar.Post("/count", h.handleIncrement)
	})
}

type countResponse struct {
	Count int64                `json:"count"`
	Daily []counter.DailyCount `json:"daily,omitempty"`
	MAU   *int64               `json:"mau,omitempty"`
}

func (h *Handler) handleGetCount(w http.ResponseWriter, r *http.Request) {
	total, err := h.counter.Total(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("read total failed")
		utils.RespondError(w, http.StatusServiceUnavailable, "counter unavailable")
		return
	}

	resp := countResponse{Count: total}
	if daily, _ := strconv.ParseBool(r.URL.Query().Get("daily")); daily {
		days, err := h.counter.Daily(r.Context(), h.window)
		if err != nil {
			h.log.Error().Err(err).Msg("read daily counts failed")
			utils.RespondError(w, http.StatusServiceUnavailable, "counter unavailable")
			return
		}
		mau := counter.Sum(days)
		resp.Daily = days
		resp.MAU = &mau
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleIncrement(w http.ResponseWriter, r *http.Request) {
	if err := h.counter.Increment(r.Context()); err != nil {
		h.log.Error().Err(err).Msg("increment failed")
		utils.RespondError(w, http.StatusServiceUnavailable, "counter unavailable")
		return
	}

	total, err := h.counter.Total(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("read total failed")
		utils.RespondError(w, http.StatusServiceUnavailable, "counter unavailable")
		return
	}
	utils.RespondJSON(w, http.StatusOK, countResponse{Count: total})
}
