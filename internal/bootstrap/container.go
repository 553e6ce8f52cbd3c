package bootstrap

import (
	"context"
	"log"
	"time"

	"echomart-be/internal/config"
	"echomart-be/internal/controller"
	"echomart-be/internal/handler"
	"echomart-be/internal/model"
	"echomart-be/internal/pkg/logger"
	"echomart-be/internal/repository/memory"
	"echomart-be/internal/repository/unitofwork"
	"echomart-be/internal/service"
	"echomart-be/internal/websocket"
	"echomart-be/pkg/events"
	"echomart-be/pkg/reconcile"

	pktNats "echomart-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const orderPlacedTopic = "ORDER_PLACED"

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	CatalogController controller.ICatalogController
	OrderController   controller.IOrderController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Core Domain
	// In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(cfg.Session.IdleExpiry)

	// Reconciliation engine; the auto-hide callback notifies live clients
	// when the order banner times out.
	engine := reconcile.NewEngine(cfg.Session.OrderDwell, func(sessionID string) {
		wsHub.Send(sessionID, model.StreamEvent{
			Type:      model.StreamOrderBannerHidden,
			SessionId: sessionID,
			SentAt:    time.Now(),
		})
	})

	// 4. Services
	publisherService := service.NewPublisherService(orderPlacedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		orderPlacedTopic,
		uowFactory,
		natsPub,
	)

	// Audit trail for placed orders coming back off the bus.
	if natsSub != nil {
		err := natsSub.Subscribe("events."+events.TypeOrderPlaced, "order-audit", func(ctx context.Context, evt events.Event) error {
			sysLogger.Info("OrderAudit", "Order placed", evt.Payload())
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to start order audit subscriber: %v", err)
		}
	}

	sessionService := service.NewSessionService(
		sessionRepo,
		engine,
		publisherService,
		wsHub,
		sysLogger,
		cfg.Session.TokenTTL,
	)
	catalogService := service.NewCatalogService()
	orderService := service.NewOrderService(uowFactory)

	// Stream Handler
	streamHandler := handler.NewStreamHandler(wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		CatalogController: controller.NewCatalogController(catalogService),
		OrderController:   controller.NewOrderController(orderService),

		ConsumerService: consumerService,

		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,
	}
}
