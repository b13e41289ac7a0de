package render

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"os"
	"path/filepath"
	"sync"
	texttemplate "text/template"

	"github.com/HostMaster/notification-renderer/internal/model"
)

const (
	KindReservation = "reservation_confirmation"
	KindInvoice     = "invoice_email"
	KindGeneric     = "generic_notification"
)

const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

type TemplateInfo struct {
	Kind        string `json:"kind"`
	ContentType string `json:"content_type"`
}

func Templates() []TemplateInfo {
	return []TemplateInfo{
		{Kind: KindReservation, ContentType: ContentTypeHTML},
		{Kind: KindInvoice, ContentType: ContentTypeHTML},
		{Kind: KindGeneric, ContentType: ContentTypeText},
	}
}

// Renderer substitutes notice fields into the fixed layouts. HTML layouts
// are executed through html/template so every interpolated value is escaped.
// Rendering is pure: the same notice always produces the same bytes.
type Renderer struct {
	mu          sync.RWMutex
	reservation *htmltemplate.Template
	invoice     *htmltemplate.Template
	generic     *texttemplate.Template
}

func New() (*Renderer, error) {
	reservation, err := htmltemplate.ParseFS(templateFS, "templates/"+KindReservation+".html")
	if err != nil {
		return nil, err
	}

	invoice, err := htmltemplate.ParseFS(templateFS, "templates/"+KindInvoice+".html")
	if err != nil {
		return nil, err
	}

	generic, err := texttemplate.ParseFS(templateFS, "templates/"+KindGeneric+".txt")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		reservation: reservation,
		invoice:     invoice,
		generic:     generic,
	}, nil
}

// LoadOverrides re-parses any layout files present in dir and swaps them in.
// Missing files keep the currently loaded layout. A file that fails to parse
// is reported and the previously loaded layout stays active, so a bad
// override can never break rendering.
func (r *Renderer) LoadOverrides(dir string) (int, error) {
	loaded := 0

	reservationPath := filepath.Join(dir, KindReservation+".html")
	if _, err := os.Stat(reservationPath); err == nil {
		t, err := htmltemplate.ParseFiles(reservationPath)
		if err != nil {
			return loaded, err
		}
		r.mu.Lock()
		r.reservation = t
		r.mu.Unlock()
		loaded++
	}

	invoicePath := filepath.Join(dir, KindInvoice+".html")
	if _, err := os.Stat(invoicePath); err == nil {
		t, err := htmltemplate.ParseFiles(invoicePath)
		if err != nil {
			return loaded, err
		}
		r.mu.Lock()
		r.invoice = t
		r.mu.Unlock()
		loaded++
	}

	genericPath := filepath.Join(dir, KindGeneric+".txt")
	if _, err := os.Stat(genericPath); err == nil {
		t, err := texttemplate.ParseFiles(genericPath)
		if err != nil {
			return loaded, err
		}
		r.mu.Lock()
		r.generic = t
		r.mu.Unlock()
		loaded++
	}

	return loaded, nil
}

type reservationView struct {
	Title             string
	Message           string
	Code              string
	AccommodationName string
	RoomNumber        string
	StartDate         string
	EndDate           string
	GuestCount        int
	StatusText        string
}

func (r *Renderer) ReservationConfirmation(n model.ReservationNotice) ([]byte, error) {
	if err := validateReservation(n); err != nil {
		return nil, err
	}

	view := reservationView{
		Title:             n.Title,
		Message:           n.Message,
		Code:              ReservationCode(n.ReservationID),
		AccommodationName: n.AccommodationName,
		RoomNumber:        n.RoomNumber.String(),
		StartDate:         n.StartDate,
		EndDate:           n.EndDate,
		GuestCount:        *n.GuestCount,
		StatusText:        StatusText(n.Status),
	}

	var buf bytes.Buffer
	r.mu.RLock()
	err := r.reservation.Execute(&buf, view)
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

type invoiceView struct {
	Title             string
	Code              string
	AccommodationName string
	RoomNumber        string
	StartDate         string
	EndDate           string
	RoomCharge        float64
	ExtraServices     []model.InvoiceLine
	Total             float64
}

func (r *Renderer) Invoice(n model.InvoiceNotice) ([]byte, error) {
	if err := validateInvoice(n); err != nil {
		return nil, err
	}

	view := invoiceView{
		Title:             n.Title,
		Code:              ReservationCode(n.ReservationID),
		AccommodationName: n.AccommodationName,
		RoomNumber:        n.RoomNumber.String(),
		StartDate:         n.StartDate,
		EndDate:           n.EndDate,
		RoomCharge:        n.RoomCharge,
		ExtraServices:     n.ExtraServices,
		Total:             n.Total,
	}

	var buf bytes.Buffer
	r.mu.RLock()
	err := r.invoice.Execute(&buf, view)
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (r *Renderer) Generic(n model.GenericNotice) ([]byte, error) {
	if err := validateGeneric(n); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	r.mu.RLock()
	err := r.generic.Execute(&buf, n)
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func validateReservation(n model.ReservationNotice) error {
	if n.Title == "" {
		return missing("title")
	}
	if n.Message == "" {
		return missing("message")
	}
	if n.ReservationID == "" {
		return missing("reservation_id")
	}
	if n.AccommodationName == "" {
		return missing("accommodation_name")
	}
	if n.RoomNumber == "" {
		return missing("room_number")
	}
	if n.StartDate == "" {
		return missing("start_date")
	}
	if n.EndDate == "" {
		return missing("end_date")
	}
	if n.GuestCount == nil {
		return missing("guest_count")
	}
	if n.Status == "" {
		return missing("status")
	}
	return nil
}

func validateInvoice(n model.InvoiceNotice) error {
	if n.Title == "" {
		return missing("title")
	}
	if n.ReservationID == "" {
		return missing("reservation_id")
	}
	if n.AccommodationName == "" {
		return missing("accommodation_name")
	}
	if n.RoomNumber == "" {
		return missing("room_number")
	}
	if n.StartDate == "" {
		return missing("start_date")
	}
	if n.EndDate == "" {
		return missing("end_date")
	}
	return nil
}

func validateGeneric(n model.GenericNotice) error {
	if n.Subject == "" {
		return missing("subject")
	}
	if n.Message == "" {
		return missing("message")
	}
	return nil
}
