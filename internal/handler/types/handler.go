package types

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/talklens/backend/internal/model/relationship"
	"github.com/zhouzirui/talklens/backend/pkg/utils"
)

// Handler 关系类型目录的HTTP处理器
type Handler struct {
	types relationship.Store
}

// New 创建类型处理器
func New(types relationship.Store) *Handler {
	return &Handler{
		types: types,
	}
}

// RegisterRoutes 注册类型相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/types", h.handleListTypes)
	r.Get("/types/{key}", h.handleGetType)
}

// handleListTypes 按矩阵顺序列出所有类型
func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.types.List())
}

func (h *Handler) handleGetType(w http.ResponseWriter, r *http.Request) {
	typ, ok := h.types.FindByKey(chi.URLParam(r, "key"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "type not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, typ)
}
