package render

import "github.com/HostMaster/notification-renderer/internal/model"

var statusText = map[model.ReservationStatus]string{
	model.StatusConfirmed: "Confirmada",
	model.StatusPending:   "Pendiente",
	model.StatusCancelled: "Cancelada",
}

// StatusText returns the Spanish display text for a reservation status.
// Unknown statuses pass through verbatim.
func StatusText(s model.ReservationStatus) string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return string(s)
}

// ReservationCode formats a reservation ID as the booking code printed on
// every notice, e.g. 482 -> "HM482TR".
func ReservationCode(id model.FlexID) string {
	return "HM" + id.String() + "TR"
}
