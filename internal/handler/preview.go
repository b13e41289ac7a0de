package handler

import (
	"net/http"

	"github.com/HostMaster/notification-renderer/internal/dto"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// renderPreview keeps a websocket open for template authors: every inbound
// message is a render request, every outbound frame carries the rendered
// document or the render error.
func (h *Handler) renderPreview(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var request dto.PreviewRequest
		if err := conn.ReadJSON(&request); err != nil {
			break
		}

		doc, err := h.services.Render.RenderRaw(r.Context(), request.Kind, request.Notice)
		if err != nil {
			if err := conn.WriteJSON(Resp{"error": err.Error()}); err != nil {
				break
			}
			continue
		}

		if err := conn.WriteJSON(Resp{"document": doc}); err != nil {
			break
		}
	}
}
