package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/softjack/futebol-api/realtime"
	"github.com/softjack/futebol-api/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// A checagem de origem fica a cargo da política de CORS do router.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub            *realtime.Hub
	sorteioService services.SorteioService
	logger         *slog.Logger
}

func NewWebSocketHandler(hub *realtime.Hub, sorteioService services.SorteioService, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            hub,
		sorteioService: sorteioService,
		logger:         logger,
	}
}

// ServeSorteio assina o cliente nos eventos ao vivo de um sorteio.
// GET /api/ws/sorteios/{id}
func (h *WebSocketHandler) ServeSorteio(w http.ResponseWriter, r *http.Request) {
	sorteioID, err := readIDParam(r, "id")
	if err != nil {
		notFoundResponse(w, r)
		return
	}

	if err := h.sorteioExists(r.Context(), sorteioID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("falha no upgrade de websocket", slog.Any("error", err))
		return
	}

	client := realtime.NewClient(h.hub, conn, sorteioID)
	h.hub.Subscribe(client)
}

func (h *WebSocketHandler) sorteioExists(ctx context.Context, sorteioID int) error {
	_, err := h.sorteioService.ListTimes(ctx, sorteioID)
	if errors.Is(err, services.ErrNotFound) {
		return services.ErrNotFound
	}
	return err
}
