package service

import (
	"context"
	"encoding/json"

	"github.com/HostMaster/notification-renderer/internal/model"
	"github.com/HostMaster/notification-renderer/internal/rabbitmq"
	"github.com/HostMaster/notification-renderer/internal/render"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Render interface {
	RenderReservation(ctx context.Context, n model.ReservationNotice) (*model.RenderedDocument, error)
	RenderInvoice(ctx context.Context, n model.InvoiceNotice) (*model.RenderedDocument, error)
	RenderGeneric(ctx context.Context, n model.GenericNotice) (*model.RenderedDocument, error)
	RenderRaw(ctx context.Context, kind string, notice json.RawMessage) (*model.RenderedDocument, error)
	StartProcessingRenderRequests(ctx context.Context)
	StartJobs()
}

type Service struct {
	Render
}

func New(logger *zap.Logger, renderer *render.Renderer, rdb *redis.Client, rabbitmq *rabbitmq.MQConn) *Service {
	return &Service{
		Render: newRenderService(logger, renderer, rdb, rabbitmq),
	}
}
