package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"echomart-be/internal/dto"
	"echomart-be/internal/model"
	"echomart-be/internal/pkg/logger"
	"echomart-be/internal/pkg/serverutils"
	"echomart-be/internal/repository/memory"
	"echomart-be/pkg/reconcile"
	"echomart-be/pkg/store"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// StreamDelivery pushes stream events to a session's live connections. The
// WebSocket hub implements it; tests substitute a stub.
type StreamDelivery interface {
	Send(sessionID string, event model.StreamEvent)
}

type ISessionService interface {
	Create(ctx context.Context) (*dto.CreateSessionResponse, error)
	AppendMessages(ctx context.Context, sessionID string, req *dto.AppendMessagesRequest) (*dto.AppendMessagesResponse, error)
	GetCart(ctx context.Context, sessionID string) (*reconcile.CartView, error)
	DismissOrder(ctx context.Context, sessionID string) error
}

type sessionService struct {
	repo      *memory.SessionRepository
	engine    *reconcile.Engine
	publisher IPublisherService
	stream    StreamDelivery
	logger    logger.ILogger
	tokenTTL  time.Duration
}

func NewSessionService(
	repo *memory.SessionRepository,
	engine *reconcile.Engine,
	publisher IPublisherService,
	stream StreamDelivery,
	log logger.ILogger,
	tokenTTL time.Duration,
) ISessionService {
	return &sessionService{
		repo:      repo,
		engine:    engine,
		publisher: publisher,
		stream:    stream,
		logger:    log,
		tokenTTL:  tokenTTL,
	}
}

func (s *sessionService) Create(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := &store.Session{ID: uuid.NewString()}
	s.repo.Save(session)

	token, err := serverutils.MintSessionToken(session.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SessionService", "Session created", map[string]interface{}{"session_id": session.ID})

	return &dto.CreateSessionResponse{
		SessionId: session.ID,
		Token:     token,
	}, nil
}

// AppendMessages adds transcript entries and runs one reconciliation pass.
// A finalized order is queued for the persistence worker; queue failures are
// logged and never surface to the caller, the session state is already
// advanced.
func (s *sessionService) AppendMessages(ctx context.Context, sessionID string, req *dto.AppendMessagesRequest) (*dto.AppendMessagesResponse, error) {
	session, found := s.repo.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	session.Lock()
	for _, m := range req.Messages {
		session.Messages = append(session.Messages, store.ChatMessage{
			Sender: store.Sender(m.Sender),
			Text:   m.Text,
		})
	}
	session.Unlock()

	res := s.engine.Process(session)
	view := reconcile.Snapshot(session)

	if res.OrderPlaced != nil {
		payload, _ := json.Marshal(dto.PublishOrderPlacedMessage{
			SessionId: sessionID,
			Order:     *res.OrderPlaced,
		})
		if err := s.publisher.Publish(ctx, payload); err != nil {
			s.logger.Error("SessionService", "Failed to queue order for persistence", map[string]interface{}{
				"session_id": sessionID,
				"order_id":   res.OrderPlaced.OrderID,
				"error":      err.Error(),
			})
		}

		s.stream.Send(sessionID, model.StreamEvent{
			Type:      model.StreamOrderPlaced,
			SessionId: sessionID,
			Payload:   view,
			SentAt:    time.Now(),
		})
	} else if res.CartChanged {
		s.stream.Send(sessionID, model.StreamEvent{
			Type:      model.StreamCartUpdated,
			SessionId: sessionID,
			Payload:   view,
			SentAt:    time.Now(),
		})
	}

	// Touch the cache entry so active sessions do not idle out.
	s.repo.Save(session)

	return &dto.AppendMessagesResponse{
		CartChanged: res.CartChanged,
		OrderPlaced: res.OrderPlaced != nil,
		View:        view,
	}, nil
}

func (s *sessionService) GetCart(ctx context.Context, sessionID string) (*reconcile.CartView, error) {
	session, found := s.repo.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}
	view := reconcile.Snapshot(session)
	return &view, nil
}

func (s *sessionService) DismissOrder(ctx context.Context, sessionID string) error {
	session, found := s.repo.Get(sessionID)
	if !found {
		return ErrSessionNotFound
	}

	s.engine.DismissOrder(session)

	s.stream.Send(sessionID, model.StreamEvent{
		Type:      model.StreamOrderBannerHidden,
		SessionId: sessionID,
		SentAt:    time.Now(),
	})
	return nil
}
