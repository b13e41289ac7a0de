package render

import (
	"fmt"

	"github.com/HostMaster/notification-renderer/internal/model"
)

const supportContact = "support@hostmaster.com"

// CheckInReminder fills in the title and message copy for a check-in
// reminder, keeping the rest of the notice untouched. The guest is expected
// tomorrow; rooms open at 14:00.
func CheckInReminder(n model.ReservationNotice, address string) model.ReservationNotice {
	n.Title = "Recordatorio de Check-In"
	n.Message = fmt.Sprintf(
		"¡Su check-in en %s es mañana! Por favor, llegue a partir de las 14:00. Dirección: %s. Contacto: %s.",
		n.AccommodationName, address, supportContact,
	)
	return n
}

// CheckOutReminder fills in the title and message copy for a check-out
// reminder. Rooms must be vacated before 11:00.
func CheckOutReminder(n model.ReservationNotice) model.ReservationNotice {
	n.Title = "Recordatorio de Check-Out"
	n.Message = fmt.Sprintf(
		"¡Su check-out de %s es mañana! Por favor, desocupe la habitación antes de las 11:00. Esperamos que haya disfrutado su estancia. Contacto: %s.",
		n.AccommodationName, supportContact,
	)
	return n
}
