package analysis

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/talklens/backend/internal/model/talk"
	analysisservice "github.com/zhouzirui/talklens/backend/internal/service/analysis"
	"github.com/zhouzirui/talklens/backend/pkg/utils"
)

// Analyzer 抽象解析业务，便于测试与替换实现
type Analyzer interface {
	Analyze(ctx context.Context, raw []byte) (*talk.Result, error)
	AnalyzeWithProgress(ctx context.Context, raw []byte, progress analysisservice.Progress) (*talk.Result, error)
}

var errTooLarge = errors.New("upload too large")

// Handler 解析服务的HTTP处理器
type Handler struct {
	analyzer  Analyzer
	maxBytes  int64
	websocket bool
	log       zerolog.Logger
}

// New 创建解析处理器
func New(analyzer Analyzer, maxBytes int64, websocket bool, logger zerolog.Logger) *Handler {
	return &Handler{
		analyzer:  analyzer,
		maxBytes:  maxBytes,
		websocket: websocket,
		log:       logger.With().Str("component", "analysis-handler").Logger(),
	}
}

// RegisterRoutes 注册解析相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/analyze", h.handleAnalyze)

	if h.websocket {
		ws := NewWebSocketHandler(h.analyzer, h.maxBytes, h.log)
		ws.RegisterWebSocketRoutes(r)
	} else {
		r.Get("/analyze/ws", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondError(w, http.StatusNotImplemented, "analysis websocket not available")
		})
	}
}

// handleAnalyze 接收 multipart 文件字段 file 或原始请求体
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	raw, err := h.readUpload(w, r)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			utils.RespondError(w, http.StatusRequestEntityTooLarge, "ファイルサイズが大きすぎます。")
			return
		}
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), raw)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("analysis failed")
		}
		utils.RespondError(w, status, analysisservice.Message(err))
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if h.maxBytes > 0 {
		if r.ContentLength > h.maxBytes {
			return nil, errTooLarge
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, uploadError(err)
		}
		return raw, nil
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, uploadError(err)
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("file is required")
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, uploadError(err)
	}
	return raw, nil
}

func uploadError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errTooLarge
	}
	return errors.New("failed to read upload")
}

// statusFor maps pipeline failures onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, analysisservice.ErrDecodeFailure):
		return http.StatusBadRequest
	case errors.Is(err, analysisservice.ErrNoMessagesFound),
		errors.Is(err, analysisservice.ErrInsufficientParticipants):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorCode is the machine-readable failure name sent over the websocket.
func errorCode(err error) string {
	switch {
	case errors.Is(err, errTooLarge):
		return "too_large"
	case errors.Is(err, analysisservice.ErrDecodeFailure):
		return "decode_failure"
	case errors.Is(err, analysisservice.ErrNoMessagesFound):
		return "no_messages"
	case errors.Is(err, analysisservice.ErrInsufficientParticipants):
		return "insufficient_participants"
	default:
		return "internal"
	}
}
