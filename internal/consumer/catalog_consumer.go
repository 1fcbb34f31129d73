package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/Eursukkul/partywknd/internal/dto"
	"github.com/Eursukkul/partywknd/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	KeyEventUpserted   = "catalog.event.upserted"
	KeyLodgingUpserted = "catalog.lodging.upserted"
)

// CatalogConsumer applies the upstream catalog feed to the local store.
// Upserts made here are not republished.
type CatalogConsumer struct {
	catalog service.CatalogService
}

func NewCatalogConsumer(catalog service.CatalogService) *CatalogConsumer {
	return &CatalogConsumer{catalog: catalog}
}

// Start handles deliveries on a background goroutine until msgs is closed.
// The returned channel is closed once the goroutine exits.
func (cc *CatalogConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			cc.handleMessage(ctx, msg)
		}
		log.Println("[CatalogConsumer] channel closed, stopping consumer")
	}()
	return done
}

func (cc *CatalogConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	var (
		id  string
		err error
	)
	switch msg.RoutingKey {
	case KeyEventUpserted:
		id, err = cc.upsertEvent(ctx, msg.Body)
	case KeyLodgingUpserted:
		id, err = cc.upsertLodging(ctx, msg.Body)
	default:
		log.Printf("[CatalogConsumer] dropping message with unknown routing key %q", msg.RoutingKey)
		msg.Nack(false, false)
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		log.Printf("[CatalogConsumer] synced %s %s", msg.RoutingKey, id)
		msg.Ack(false)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, service.ErrInvalidInput):
		log.Printf("[CatalogConsumer] rejecting %s: %v", msg.RoutingKey, err)
		msg.Nack(false, false)
	default:
		log.Printf("[CatalogConsumer] failed to apply %s %s: %v", msg.RoutingKey, id, err)
		msg.Nack(false, true) // requeue
	}
}

func (cc *CatalogConsumer) upsertEvent(ctx context.Context, body []byte) (string, error) {
	var req dto.UpsertEventRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", err
	}
	event, err := req.ToEventModel()
	if err != nil {
		return req.ID, service.ErrInvalidInput
	}
	stored, err := cc.catalog.UpsertEvent(ctx, event)
	if err != nil {
		return req.ID, err
	}
	return stored.ID, nil
}

func (cc *CatalogConsumer) upsertLodging(ctx context.Context, body []byte) (string, error) {
	var req dto.UpsertLodgingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", err
	}
	stored, err := cc.catalog.UpsertLodging(ctx, req.ToLodgingModel())
	if err != nil {
		return req.ID, err
	}
	return stored.ID, nil
}
