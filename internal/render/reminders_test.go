package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInReminder(t *testing.T) {
	n := validNotice()
	n.Title = ""
	n.Message = ""

	got := CheckInReminder(n, "Calle Mayor 1, Madrid")

	assert.Equal(t, "Recordatorio de Check-In", got.Title)
	assert.Contains(t, got.Message, "Hotel Aurora")
	assert.Contains(t, got.Message, "Calle Mayor 1, Madrid")
	assert.Contains(t, got.Message, "14:00")
	assert.Contains(t, got.Message, "support@hostmaster.com")
	// the rest of the notice stays untouched
	assert.Equal(t, n.ReservationID, got.ReservationID)
	assert.Equal(t, n.Status, got.Status)
}

func TestCheckOutReminder(t *testing.T) {
	n := validNotice()
	n.Title = ""
	n.Message = ""

	got := CheckOutReminder(n)

	assert.Equal(t, "Recordatorio de Check-Out", got.Title)
	assert.Contains(t, got.Message, "Hotel Aurora")
	assert.Contains(t, got.Message, "11:00")
	assert.Contains(t, got.Message, "support@hostmaster.com")
}

func TestReminderRendersEndToEnd(t *testing.T) {
	r := newRenderer(t)

	body, err := r.ReservationConfirmation(CheckOutReminder(validNotice()))
	require.NoError(t, err)

	assert.Contains(t, string(body), "Recordatorio de Check-Out")
	assert.Contains(t, string(body), "HM482TR")
}
