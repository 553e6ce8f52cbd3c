package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"echomart-be/internal/dto"
	"echomart-be/internal/entity"
	"echomart-be/internal/repository/specification"
	"echomart-be/internal/repository/unitofwork"
	"echomart-be/pkg/events"
	pktNats "echomart-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the order-placed topic, persists each order and
// announces it on the NATS bus. Persistence is fully decoupled from the
// request path: a failure here retries without touching session state.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	natsPub    *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	natsPub *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		natsPub:    natsPub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishOrderPlacedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal order message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Persisting order %s for session %s", payload.Order.OrderID, payload.SessionId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	// Replayed messages must not create duplicates; the order code is the
	// idempotency key.
	existing, err := uow.OrderRepository().FindOne(ctx, specification.ByOrderCode{OrderCode: payload.Order.OrderID})
	if err != nil {
		log.Printf("[ERROR] Failed to check for existing order %s: %v", payload.Order.OrderID, err)
		msg.Nack()
		return
	}
	if existing != nil {
		log.Printf("[INFO] Order %s already persisted, skipping", payload.Order.OrderID)
		msg.Ack()
		return
	}

	lines := make([]entity.OrderLine, 0, len(payload.Order.Lines))
	for _, l := range payload.Order.Lines {
		lines = append(lines, entity.OrderLine{
			LineID:    l.ID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	order := &entity.Order{
		Id:        uuid.New(),
		SessionId: payload.SessionId,
		OrderCode: payload.Order.OrderID,
		Lines:     lines,
		Total:     payload.Order.Total,
		Currency:  "INR",
		CreatedAt: payload.Order.CreatedAt,
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		log.Printf("[ERROR] Failed to persist order %s: %v", order.OrderCode, err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	// Announce for downstream consumers (fulfilment, analytics). Best effort;
	// the order is already durable.
	if cs.natsPub != nil {
		evt := events.NewOrderPlaced(payload.SessionId, order.OrderCode, order.Total)
		if err := cs.natsPub.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish ORDER_PLACED event for %s: %v", order.OrderCode, err)
		}
	}

	log.Printf("[SUCCESS] Order persisted: %s (session %s)", order.OrderCode, payload.SessionId)
	msg.Ack()
}
