package model

import (
	"encoding/json"
	"strconv"
)

type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusPending   ReservationStatus = "pending"
	StatusCancelled ReservationStatus = "cancelled"
)

// FlexID accepts both string and numeric JSON values, since upstream
// systems send reservation IDs either way.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(strconv.FormatInt(n, 10))
	return nil
}

func (f FlexID) String() string {
	return string(f)
}

// ReservationNotice carries everything needed to render one reservation
// notification. Dates are pre-formatted YYYY-MM-DD strings.
type ReservationNotice struct {
	Title             string            `json:"title"`
	Message           string            `json:"message"`
	ReservationID     FlexID            `json:"reservation_id"`
	AccommodationName string            `json:"accommodation_name"`
	RoomNumber        FlexID            `json:"room_number"`
	StartDate         string            `json:"start_date"`
	EndDate           string            `json:"end_date"`
	GuestCount        *int              `json:"guest_count"`
	Status            ReservationStatus `json:"status"`
}

type InvoiceLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type InvoiceNotice struct {
	Title             string        `json:"title"`
	ReservationID     FlexID        `json:"reservation_id"`
	AccommodationName string        `json:"accommodation_name"`
	RoomNumber        FlexID        `json:"room_number"`
	StartDate         string        `json:"start_date"`
	EndDate           string        `json:"end_date"`
	RoomCharge        float64       `json:"room_charge"`
	ExtraServices     []InvoiceLine `json:"extra_services"`
	Total             float64       `json:"total"`
}

type GenericNotice struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}
