package transport

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/infrastructure"
	sesion "github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/interface"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewWebsocketHandler expone /ws/comandas. El gatekeeper ya validó el token;
// aquí solo se adjunta el cliente a los topics de la pantalla de comandas.
func NewWebsocketHandler(hub *infrastructure.Hub, sendBuffer int, allowedActions []string) func(echo.Context) error {
	if sendBuffer <= 0 {
		sendBuffer = 8
	}
	if len(allowedActions) == 0 {
		allowedActions = []string{domain.ActionCreated, domain.ActionUpdated, domain.ActionDeleted, domain.ActionInvalid}
	}

	return func(c echo.Context) error {
		claims := sesion.ClaimsDe(c)
		if claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		userID := claims.UserID()
		sessionID := claims.SessionID

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws upgrade failed", slog.String("userId", userID), slog.Any("error", err))
			return err
		}
		slog.Info("ws upgrade success", slog.String("userId", userID), slog.String("sessionId", sessionID))

		client := infrastructure.NewClient(hub, conn, userID, sessionID, sendBuffer)
		topics := buildTopics([]string{"comandas", "platillos", "mesas"}, allowedActions)
		hub.AttachClient(client, topics)

		go client.WritePump()
		go client.ReadPump()

		client.SendDomainMessage(&domain.Message{
			Topic:  domain.TopicSystemConnected,
			Entity: domain.SystemEntity,
			Action: domain.ActionConnected,
			Metadata: map[string]string{
				"userId":    userID,
				"sessionId": sessionID,
			},
			Data: map[string]any{
				"allowedTopics": topics,
				"roles":         claims.Roles,
			},
			Timestamp: time.Now().UTC(),
		})
		return nil
	}
}

func buildTopics(entities, allowedActions []string) []string {
	topics := make([]string, 0, len(entities)*len(allowedActions))
	seen := make(map[string]struct{})
	for _, entity := range entities {
		for _, action := range allowedActions {
			topic := domain.EntityTopic(entity, strings.TrimSpace(action))
			if topic == "" {
				continue
			}
			if _, ok := seen[topic]; ok {
				continue
			}
			topics = append(topics, topic)
			seen[topic] = struct{}{}
		}
	}
	return topics
}
