package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/pkg/jwt"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/pkg/ws"
	"github.com/moqawil/moqawil_server/internal/repository"
)

type WebSocketHandler struct {
	hub         *ws.Hub
	companyRepo *repository.CompanyRepo
	secret      string
	upgrader    websocket.Upgrader
}

func NewWebSocketHandler(hub *ws.Hub, companyRepo *repository.CompanyRepo, secret string) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		companyRepo: companyRepo,
		secret:      secret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins already passed CORS, the upgrade itself is open.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve GET /ws?token=...
// Browsers cannot set headers on websocket upgrades, so the JWT rides
// in the query string.
func (h *WebSocketHandler) Serve(c *gin.Context) {
	claims, err := jwt.ParseToken(c.Query("token"), h.secret)
	if err != nil {
		response.AuthError(c, "")
		return
	}
	if claims.Role != model.RoleCompany {
		response.PermissionError(c, "")
		return
	}

	company, err := h.companyRepo.GetByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.PermissionError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.hub.Register(company.ID, conn)
}
