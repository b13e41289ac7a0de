package dto

import (
	"encoding/json"

	"github.com/HostMaster/notification-renderer/internal/model"
)

type MQRenderRequest struct {
	Kind      string          `json:"kind"`
	Recipient string          `json:"recipient"`
	Notice    json.RawMessage `json:"notice"`
}

type MQRenderedDocument struct {
	Recipient string                 `json:"recipient"`
	Document  model.RenderedDocument `json:"document"`
}
