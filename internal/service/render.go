package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/HostMaster/notification-renderer/internal/dto"
	"github.com/HostMaster/notification-renderer/internal/model"
	"github.com/HostMaster/notification-renderer/internal/rabbitmq"
	"github.com/HostMaster/notification-renderer/internal/render"
	"github.com/HostMaster/notification-renderer/internal/repository/redisrepo"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	SUBJECT_SUFFIX          = " - HostMaster"
	DOCUMENT_CACHE_TTL      = time.Minute * 10
	DEFAULT_RELOAD_INTERVAL = time.Minute * 5
)

// broker is the part of rabbitmq.MQConn the render service uses.
type broker interface {
	Consume(queue string) (<-chan amqp.Delivery, error)
	Publish(queue string, body []byte) error
}

type renderService struct {
	logger    *zap.Logger
	renderer  *render.Renderer
	rdb       *redis.Client
	rabbitmq  broker
	scheduler gocron.Scheduler
}

func newRenderService(logger *zap.Logger, renderer *render.Renderer, rdb *redis.Client, rabbitmq broker) Render {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	return &renderService{
		logger:    logger,
		renderer:  renderer,
		rdb:       rdb,
		rabbitmq:  rabbitmq,
		scheduler: scheduler,
	}
}

func fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func newDocument(kind string, subject string, contentType string, body []byte) *model.RenderedDocument {
	return &model.RenderedDocument{
		ID:          uuid.New(),
		Kind:        kind,
		Subject:     subject,
		ContentType: contentType,
		Body:        string(body),
		Checksum:    fingerprint(body),
		RenderedAt:  time.Now().UTC(),
	}
}

// cached fetches a previously rendered document for an identical payload.
// Rendering is deterministic, so serving the cached copy is safe.
func (s *renderService) cached(ctx context.Context, key string) *model.RenderedDocument {
	doc, err := redisrepo.Get[model.RenderedDocument](s.rdb, ctx, key)
	if err == nil {
		return doc
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get rendered document(%s) from redis: %s", key, err.Error())
	}
	return nil
}

func (s *renderService) store(ctx context.Context, key string, doc *model.RenderedDocument) {
	if err := redisrepo.SetJSON(s.rdb, ctx, key, doc, DOCUMENT_CACHE_TTL); err != nil {
		s.logger.Sugar().Errorf("failed to set rendered document(%s) in redis cache: %s", key, err.Error())
	}
}

func (s *renderService) RenderReservation(ctx context.Context, n model.ReservationNotice) (*model.RenderedDocument, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, ErrInternal
	}

	key := redisrepo.RenderedDocumentKey(render.KindReservation, fingerprint(payload))
	if doc := s.cached(ctx, key); doc != nil {
		return doc, nil
	}

	body, err := s.renderer.ReservationConfirmation(n)
	if err != nil {
		return nil, err
	}

	doc := newDocument(render.KindReservation, n.Title+SUBJECT_SUFFIX, render.ContentTypeHTML, body)
	s.store(ctx, key, doc)

	return doc, nil
}

func (s *renderService) RenderInvoice(ctx context.Context, n model.InvoiceNotice) (*model.RenderedDocument, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, ErrInternal
	}

	key := redisrepo.RenderedDocumentKey(render.KindInvoice, fingerprint(payload))
	if doc := s.cached(ctx, key); doc != nil {
		return doc, nil
	}

	body, err := s.renderer.Invoice(n)
	if err != nil {
		return nil, err
	}

	doc := newDocument(render.KindInvoice, n.Title+SUBJECT_SUFFIX, render.ContentTypeHTML, body)
	s.store(ctx, key, doc)

	return doc, nil
}

func (s *renderService) RenderGeneric(ctx context.Context, n model.GenericNotice) (*model.RenderedDocument, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, ErrInternal
	}

	key := redisrepo.RenderedDocumentKey(render.KindGeneric, fingerprint(payload))
	if doc := s.cached(ctx, key); doc != nil {
		return doc, nil
	}

	body, err := s.renderer.Generic(n)
	if err != nil {
		return nil, err
	}

	doc := newDocument(render.KindGeneric, n.Subject, render.ContentTypeText, body)
	s.store(ctx, key, doc)

	return doc, nil
}

func (s *renderService) RenderRaw(ctx context.Context, kind string, notice json.RawMessage) (*model.RenderedDocument, error) {
	switch kind {
	case render.KindReservation:
		var n model.ReservationNotice
		if err := json.Unmarshal(notice, &n); err != nil {
			return nil, err
		}
		return s.RenderReservation(ctx, n)
	case render.KindInvoice:
		var n model.InvoiceNotice
		if err := json.Unmarshal(notice, &n); err != nil {
			return nil, err
		}
		return s.RenderInvoice(ctx, n)
	case render.KindGeneric:
		var n model.GenericNotice
		if err := json.Unmarshal(notice, &n); err != nil {
			return nil, err
		}
		return s.RenderGeneric(ctx, n)
	default:
		return nil, ErrUnknownKind
	}
}

func (s *renderService) StartProcessingRenderRequests(ctx context.Context) {
	msgs, err := s.rabbitmq.Consume(rabbitmq.RENDER_REQUESTS_QUEUE)
	if err != nil {
		panic(err)
	}

	for msg := range msgs {
		s.processRenderRequest(ctx, msg)
	}
}

func (s *renderService) processRenderRequest(ctx context.Context, msg amqp.Delivery) {
	var request dto.MQRenderRequest
	if err := json.Unmarshal(msg.Body, &request); err != nil {
		s.logger.Sugar().Errorf("failed to unmarshal render request: %s", err.Error())
		msg.Nack(false, false)
		return
	}

	doc, err := s.RenderRaw(ctx, request.Kind, request.Notice)
	if err != nil {
		// rendering is deterministic, requeueing cannot help
		s.logger.Sugar().Errorf("failed to render %s request: %s", request.Kind, err.Error())
		msg.Nack(false, false)
		return
	}

	rendered, err := json.Marshal(dto.MQRenderedDocument{
		Recipient: request.Recipient,
		Document:  *doc,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal rendered document(%s): %s", doc.ID.String(), err.Error())
		msg.Nack(false, false)
		return
	}

	if err := s.rabbitmq.Publish(rabbitmq.RENDERED_DOCUMENTS_QUEUE, rendered); err != nil {
		s.logger.Sugar().Errorf("failed to publish rendered document(%s): %s", doc.ID.String(), err.Error())
		msg.Nack(false, true)
		return
	}

	msg.Ack(false)
}

func (s *renderService) newReloadTemplateOverridesJob() {
	dir := viper.GetString("render.templates_dir")
	if dir == "" {
		return
	}

	interval := viper.GetDuration("render.reload_interval")
	if interval == 0 {
		interval = DEFAULT_RELOAD_INTERVAL
	}

	s.scheduler.NewJob(gocron.DurationJob(interval), gocron.NewTask(func() {
		loaded, err := s.renderer.LoadOverrides(dir)
		if err != nil {
			s.logger.Sugar().Errorf("failed to reload template overrides from %s: %s", dir, err.Error())
			return
		}
		if loaded > 0 {
			s.logger.Sugar().Infof("reloaded %d template override(s) from %s", loaded, dir)
		}
	}))
}

func (s *renderService) StartJobs() {
	s.newReloadTemplateOverridesJob()

	s.scheduler.Start()
}
