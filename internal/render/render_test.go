package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HostMaster/notification-renderer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func validNotice() model.ReservationNotice {
	return model.ReservationNotice{
		Title:             "Confirmación de Reserva",
		Message:           "Su reserva ha sido confirmada.",
		ReservationID:     "482",
		AccommodationName: "Hotel Aurora",
		RoomNumber:        "204",
		StartDate:         "2025-06-01",
		EndDate:           "2025-06-05",
		GuestCount:        intPtr(2),
		Status:            model.StatusConfirmed,
	}
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New()
	require.NoError(t, err)
	return r
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name   string
		status model.ReservationStatus
		want   string
	}{
		{name: "confirmed", status: model.StatusConfirmed, want: "Confirmada"},
		{name: "pending", status: model.StatusPending, want: "Pendiente"},
		{name: "cancelled", status: model.StatusCancelled, want: "Cancelada"},
		{name: "unknown passes through verbatim", status: "expired", want: "expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusText(tt.status))
		})
	}
}

func TestReservationCode(t *testing.T) {
	assert.Equal(t, "HM482TR", ReservationCode("482"))
	assert.Equal(t, "HMA-17TR", ReservationCode("A-17"))
}

func TestReservationConfirmation(t *testing.T) {
	r := newRenderer(t)

	body, err := r.ReservationConfirmation(validNotice())
	require.NoError(t, err)

	html := string(body)
	for _, want := range []string{"HM482TR", "Hotel Aurora", "204", "2025-06-01", "2025-06-05", "2", "Confirmada"} {
		assert.Contains(t, html, want)
	}
	assert.Contains(t, html, "Confirmación de Reserva")
}

func TestReservationConfirmationStatusFallback(t *testing.T) {
	r := newRenderer(t)

	n := validNotice()
	n.Status = "expired"

	body, err := r.ReservationConfirmation(n)
	require.NoError(t, err)

	assert.Contains(t, string(body), "expired")
	assert.NotContains(t, string(body), "Confirmada")
}

func TestReservationConfirmationEscapesFields(t *testing.T) {
	r := newRenderer(t)

	n := validNotice()
	n.AccommodationName = `<script>alert("x")</script>`

	body, err := r.ReservationConfirmation(n)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "<script>")
	assert.Contains(t, string(body), "&lt;script&gt;")
}

func TestReservationConfirmationIdempotent(t *testing.T) {
	r := newRenderer(t)

	first, err := r.ReservationConfirmation(validNotice())
	require.NoError(t, err)
	second, err := r.ReservationConfirmation(validNotice())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestReservationConfirmationMissingFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(n *model.ReservationNotice)
	}{
		{field: "title", mutate: func(n *model.ReservationNotice) { n.Title = "" }},
		{field: "message", mutate: func(n *model.ReservationNotice) { n.Message = "" }},
		{field: "reservation_id", mutate: func(n *model.ReservationNotice) { n.ReservationID = "" }},
		{field: "accommodation_name", mutate: func(n *model.ReservationNotice) { n.AccommodationName = "" }},
		{field: "room_number", mutate: func(n *model.ReservationNotice) { n.RoomNumber = "" }},
		{field: "start_date", mutate: func(n *model.ReservationNotice) { n.StartDate = "" }},
		{field: "end_date", mutate: func(n *model.ReservationNotice) { n.EndDate = "" }},
		{field: "guest_count", mutate: func(n *model.ReservationNotice) { n.GuestCount = nil }},
		{field: "status", mutate: func(n *model.ReservationNotice) { n.Status = "" }},
	}

	r := newRenderer(t)

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			n := validNotice()
			tt.mutate(&n)

			body, err := r.ReservationConfirmation(n)
			assert.Nil(t, body)

			var missingErr *MissingFieldError
			require.True(t, errors.As(err, &missingErr))
			assert.Equal(t, tt.field, missingErr.Field)
		})
	}
}

func TestInvoice(t *testing.T) {
	r := newRenderer(t)

	body, err := r.Invoice(model.InvoiceNotice{
		Title:             "Factura de Reserva",
		ReservationID:     "482",
		AccommodationName: "Hotel Aurora",
		RoomNumber:        "204",
		StartDate:         "2025-06-01",
		EndDate:           "2025-06-05",
		RoomCharge:        320,
		ExtraServices: []model.InvoiceLine{
			{Name: "Desayuno", Price: 45.5},
			{Name: "Parking", Price: 30},
		},
		Total: 395.5,
	})
	require.NoError(t, err)

	html := string(body)
	for _, want := range []string{"HM482TR", "Hotel Aurora", "Desayuno", "45.50", "Parking", "30.00", "320.00", "395.50"} {
		assert.Contains(t, html, want)
	}
}

func TestInvoiceMissingFields(t *testing.T) {
	r := newRenderer(t)

	_, err := r.Invoice(model.InvoiceNotice{Title: "Factura de Reserva"})

	var missingErr *MissingFieldError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "reservation_id", missingErr.Field)
}

func TestGeneric(t *testing.T) {
	r := newRenderer(t)

	body, err := r.Generic(model.GenericNotice{
		Subject: "Mantenimiento programado",
		Message: "El sistema no estará disponible el sábado.",
	})
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "El sistema no estará disponible el sábado.")
	assert.Contains(t, text, "support@hostmaster.com")
	// plain text layout must not escape anything
	assert.NotContains(t, text, "&aacute;")
}

func TestGenericMissingMessage(t *testing.T) {
	r := newRenderer(t)

	_, err := r.Generic(model.GenericNotice{Subject: "Aviso"})

	var missingErr *MissingFieldError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "message", missingErr.Field)
}

func TestLoadOverrides(t *testing.T) {
	r := newRenderer(t)

	dir := t.TempDir()
	override := `<p>{{ .Title }} | {{ .Code }} | {{ .StatusText }}</p>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, KindReservation+".html"), []byte(override), 0o644))

	loaded, err := r.LoadOverrides(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)

	body, err := r.ReservationConfirmation(validNotice())
	require.NoError(t, err)
	assert.Equal(t, "<p>Confirmación de Reserva | HM482TR | Confirmada</p>", strings.TrimSpace(string(body)))
}

func TestLoadOverridesKeepsLayoutOnParseError(t *testing.T) {
	r := newRenderer(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, KindReservation+".html"), []byte(`{{ .Broken`), 0o644))

	_, err := r.LoadOverrides(dir)
	require.Error(t, err)

	// embedded layout must still render
	body, err := r.ReservationConfirmation(validNotice())
	require.NoError(t, err)
	assert.Contains(t, string(body), "HM482TR")
}

func TestLoadOverridesEmptyDir(t *testing.T) {
	r := newRenderer(t)

	loaded, err := r.LoadOverrides(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, loaded)
}
