package model

import (
	"time"

	"github.com/google/uuid"
)

type RenderedDocument struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Subject     string    `json:"subject"`
	ContentType string    `json:"content_type"`
	Body        string    `json:"body"`
	Checksum    string    `json:"checksum"`
	RenderedAt  time.Time `json:"rendered_at"`
}
