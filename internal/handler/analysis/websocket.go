package analysis

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	analysisservice "github.com/zhouzirui/talklens/backend/internal/service/analysis"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
	writeTimeout = 10 * time.Second
)

// WebSocketHandler 以 WebSocket 推送解析进度
type WebSocketHandler struct {
	analyzer Analyzer
	maxBytes int64
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(analyzer Analyzer, maxBytes int64, logger zerolog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		analyzer: analyzer,
		maxBytes: maxBytes,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		log: logger,
	}
}

// RegisterWebSocketRoutes 注册WebSocket路由
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/analyze/ws", h.handleWebSocket)
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

type progressData struct {
	Stage   analysisservice.Stage `json:"stage"`
	Percent int                   `json:"percent"`
}

type errorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleWebSocket 接收一帧完整的导出文件，依次推送 progress 与 result/error
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	log := h.log.With().Str("session", sessionID).Logger()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if h.maxBytes > 0 {
		conn.SetReadLimit(h.maxBytes)
	}
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	go h.pingLoop(ctx, conn)

	h.send(conn, sessionID, "connected", map[string]any{
		"stages":   analysisservice.Stages,
		"maxBytes": h.maxBytes,
	})

	_, raw, err := conn.ReadMessage()
	if err != nil {
		if errors.Is(err, websocket.ErrReadLimit) {
			h.sendError(conn, sessionID, errTooLarge)
			return
		}
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			log.Warn().Err(err).Msg("websocket read failed")
		}
		return
	}

	// 劫持后的连接不会随 r.Context() 取消，由读循环感知断开
	go h.watchClose(conn, cancel)

	result, err := h.analyzer.AnalyzeWithProgress(ctx, raw, func(stage analysisservice.Stage, percent int) {
		h.send(conn, sessionID, "progress", progressData{Stage: stage, Percent: percent})
	})
	if err != nil {
		if statusFor(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("analysis failed")
		}
		h.sendError(conn, sessionID, err)
		return
	}

	h.send(conn, sessionID, "result", result)
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(writeTimeout),
	)
}

func (h *WebSocketHandler) send(conn *websocket.Conn, sessionID, typ string, data interface{}) {
	payload, err := json.Marshal(outgoingMessage{
		Type:      typ,
		SessionID: sessionID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		h.log.Error().Err(err).Str("type", typ).Msg("marshal websocket message failed")
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		h.log.Debug().Err(err).Str("type", typ).Msg("write websocket message failed")
	}
}

func (h *WebSocketHandler) sendError(conn *websocket.Conn, sessionID string, err error) {
	message := analysisservice.Message(err)
	if errors.Is(err, errTooLarge) {
		message = "ファイルサイズが大きすぎます。"
	}
	h.send(conn, sessionID, "error", errorData{Code: errorCode(err), Message: message})
}

// watchClose keeps reading so control frames are handled, and cancels the
// analysis once the peer closes or stops answering pings.
func (h *WebSocketHandler) watchClose(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

// pingLoop 定期发送ping消息
func (h *WebSocketHandler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
