package controller

import (
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/pkg/serverutils"
	internalWS "timo-intelligence-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// IStatusController exposes the live save-status stream to the admin UI.
type IStatusController interface {
	RegisterRoutes(r fiber.Router)
	ServeWs(ctx *fiber.Ctx) error
}

type statusController struct {
	hub *internalWS.Hub
	log logger.ILogger
}

func NewStatusController(hub *internalWS.Hub, log logger.ILogger) IStatusController {
	return &statusController{hub: hub, log: log}
}

func (c *statusController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/status/v1")
	h.Get("/ws", c.ServeWs)
}

func (c *statusController) ServeWs(ctx *fiber.Ctx) error {
	// Browsers cannot set headers on a websocket handshake, so the
	// token comes in as a query parameter.
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing token"))
	}

	claims, err := serverutils.ParseToken(tokenStr)
	if err != nil {
		c.log.Warn("Status", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		username := claims.Subject
		return websocket.New(func(conn *websocket.Conn) {
			c.log.Info("Status", "Starting WebSocket session", map[string]interface{}{"username": username})
			internalWS.ServeWs(c.hub, conn)
			c.log.Info("Status", "WebSocket session ended", map[string]interface{}{"username": username})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
