package dto

import (
	"encoding/json"

	"github.com/HostMaster/notification-renderer/internal/model"
)

type RenderReminderRequest struct {
	Notice  model.ReservationNotice `json:"notice"`
	Address string                  `json:"address"`
}

type PreviewRequest struct {
	Kind   string          `json:"kind"`
	Notice json.RawMessage `json:"notice"`
}
