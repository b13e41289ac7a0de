package handler

import (
	"encoding/json"
	"net/http"

	"github.com/HostMaster/notification-renderer/internal/service"
)

type Resp map[string]interface{}

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	// POST
	mux.HandleFunc("/api/v1/render/reservation", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			return
		}

		h.renderReservation(w, r)
	})

	// POST
	mux.HandleFunc("/api/v1/render/invoice", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			return
		}

		h.renderInvoice(w, r)
	})

	// POST
	mux.HandleFunc("/api/v1/render/generic", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			return
		}

		h.renderGeneric(w, r)
	})

	// POST
	mux.HandleFunc("/api/v1/render/reminder/checkin", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			return
		}

		h.renderCheckInReminder(w, r)
	})

	// POST
	mux.HandleFunc("/api/v1/render/reminder/checkout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			return
		}

		h.renderCheckOutReminder(w, r)
	})

	// GET
	mux.HandleFunc("/api/v1/templates", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			return
		}

		h.templatesList(w, r)
	})

	// GET (websocket)
	mux.HandleFunc("/api/v1/render/preview", func(w http.ResponseWriter, r *http.Request) {
		h.renderPreview(w, r)
	})

	return mux
}

func (h *Handler) Respond(w http.ResponseWriter, resp any, statusCode int) {
	respJSON, _ := json.Marshal(resp)
	w.WriteHeader(statusCode)
	w.Write(respJSON)
}
