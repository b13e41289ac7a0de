package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HostMaster/notification-renderer/internal/dto"
	"github.com/HostMaster/notification-renderer/internal/model"
	"github.com/HostMaster/notification-renderer/internal/render"
)

func (h *Handler) respondRenderError(w http.ResponseWriter, err error) {
	var missingErr *render.MissingFieldError
	if errors.As(err, &missingErr) {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusUnprocessableEntity)
		return
	}

	h.Respond(w, Resp{"error": err.Error()}, http.StatusInternalServerError)
}

func (h *Handler) renderReservation(w http.ResponseWriter, r *http.Request) {
	var input model.ReservationNotice
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	doc, err := h.services.Render.RenderReservation(r.Context(), input)
	if err != nil {
		h.respondRenderError(w, err)
		return
	}

	h.Respond(w, doc, http.StatusOK)
}

func (h *Handler) renderInvoice(w http.ResponseWriter, r *http.Request) {
	var input model.InvoiceNotice
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	doc, err := h.services.Render.RenderInvoice(r.Context(), input)
	if err != nil {
		h.respondRenderError(w, err)
		return
	}

	h.Respond(w, doc, http.StatusOK)
}

func (h *Handler) renderGeneric(w http.ResponseWriter, r *http.Request) {
	var input model.GenericNotice
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	doc, err := h.services.Render.RenderGeneric(r.Context(), input)
	if err != nil {
		h.respondRenderError(w, err)
		return
	}

	h.Respond(w, doc, http.StatusOK)
}

func (h *Handler) renderCheckInReminder(w http.ResponseWriter, r *http.Request) {
	var input dto.RenderReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	if input.Address == "" {
		h.Respond(w, Resp{"error": errAddressRequired.Error()}, http.StatusBadRequest)
		return
	}

	notice := render.CheckInReminder(input.Notice, input.Address)

	doc, err := h.services.Render.RenderReservation(r.Context(), notice)
	if err != nil {
		h.respondRenderError(w, err)
		return
	}

	h.Respond(w, doc, http.StatusOK)
}

func (h *Handler) renderCheckOutReminder(w http.ResponseWriter, r *http.Request) {
	var input dto.RenderReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Respond(w, Resp{"error": err.Error()}, http.StatusBadRequest)
		return
	}

	notice := render.CheckOutReminder(input.Notice)

	doc, err := h.services.Render.RenderReservation(r.Context(), notice)
	if err != nil {
		h.respondRenderError(w, err)
		return
	}

	h.Respond(w, doc, http.StatusOK)
}

func (h *Handler) templatesList(w http.ResponseWriter, _ *http.Request) {
	h.Respond(w, render.Templates(), http.StatusOK)
}
