package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echomart-be/internal/dto"
	"echomart-be/internal/model"
	"echomart-be/internal/repository/memory"
	"echomart-be/pkg/reconcile"
)

type stubStream struct {
	events []model.StreamEvent
}

func (s *stubStream) Send(sessionID string, event model.StreamEvent) {
	s.events = append(s.events, event)
}

type stubPublisher struct {
	payloads [][]byte
	err      error
}

func (p *stubPublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestService(t *testing.T) (ISessionService, *stubStream, *stubPublisher) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	stream := &stubStream{}
	pub := &stubPublisher{}
	repo := memory.NewSessionRepository(time.Minute)
	engine := reconcile.NewEngine(reconcile.DefaultDwell, nil)

	svc := NewSessionService(repo, engine, pub, stream, nopLogger{}, time.Hour)
	return svc, stream, pub
}

func TestCreateIssuesSessionAndToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	res, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionId)
	assert.NotEmpty(t, res.Token)

	view, err := svc.GetCart(context.Background(), res.SessionId)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestAppendMessagesPushesCartUpdate(t *testing.T) {
	svc, stream, pub := newTestService(t)
	created, err := svc.Create(context.Background())
	require.NoError(t, err)

	res, err := svc.AppendMessages(context.Background(), created.SessionId, &dto.AppendMessagesRequest{
		Messages: []dto.ChatMessageRequest{
			{Sender: "local", Text: "show me mugs"},
			{Sender: "remote", Text: "Added Classic Mug to your cart for 650 rupees"},
		},
	})
	require.NoError(t, err)

	assert.True(t, res.CartChanged)
	assert.False(t, res.OrderPlaced)
	require.Len(t, res.View.Lines, 1)
	assert.Equal(t, 650.0, res.View.Subtotal)

	require.Len(t, stream.events, 1)
	assert.Equal(t, model.StreamCartUpdated, stream.events[0].Type)
	assert.Empty(t, pub.payloads, "no order, nothing queued for persistence")
}

func TestAppendMessagesQueuesOrderForPersistence(t *testing.T) {
	svc, stream, pub := newTestService(t)
	created, err := svc.Create(context.Background())
	require.NoError(t, err)

	_, err = svc.AppendMessages(context.Background(), created.SessionId, &dto.AppendMessagesRequest{
		Messages: []dto.ChatMessageRequest{
			{Sender: "remote", Text: "Added Classic Mug to your cart for 650 rupees"},
		},
	})
	require.NoError(t, err)

	res, err := svc.AppendMessages(context.Background(), created.SessionId, &dto.AppendMessagesRequest{
		Messages: []dto.ChatMessageRequest{
			{Sender: "remote", Text: "Your order ORD-77 has been created successfully, total: 650"},
		},
	})
	require.NoError(t, err)

	assert.True(t, res.OrderPlaced)
	require.NotNil(t, res.View.LastOrder)
	assert.Equal(t, "ORD-77", res.View.LastOrder.OrderID)
	assert.Empty(t, res.View.Lines)

	require.Len(t, pub.payloads, 1)
	var queued dto.PublishOrderPlacedMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &queued))
	assert.Equal(t, created.SessionId, queued.SessionId)
	assert.Equal(t, "ORD-77", queued.Order.OrderID)

	last := stream.events[len(stream.events)-1]
	assert.Equal(t, model.StreamOrderPlaced, last.Type)
}

func TestAppendMessagesSurvivesQueueFailure(t *testing.T) {
	svc, _, pub := newTestService(t)
	pub.err = assert.AnError
	created, err := svc.Create(context.Background())
	require.NoError(t, err)

	_, err = svc.AppendMessages(context.Background(), created.SessionId, &dto.AppendMessagesRequest{
		Messages: []dto.ChatMessageRequest{
			{Sender: "remote", Text: "Added Classic Mug to your cart for 650 rupees"},
		},
	})
	require.NoError(t, err)

	res, err := svc.AppendMessages(context.Background(), created.SessionId, &dto.AppendMessagesRequest{
		Messages: []dto.ChatMessageRequest{
			{Sender: "remote", Text: "Your order has been confirmed!"},
		},
	})

	require.NoError(t, err, "queue failure must not surface to the caller")
	assert.True(t, res.OrderPlaced)
	require.NotNil(t, res.View.LastOrder)
}

func TestUnknownSessionIsRejected(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.AppendMessages(context.Background(), "nope", &dto.AppendMessagesRequest{
		Messages: []dto.ChatMessageRequest{{Sender: "remote", Text: "hi"}},
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.GetCart(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = svc.DismissOrder(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDismissOrderNotifiesStream(t *testing.T) {
	svc, stream, _ := newTestService(t)
	created, err := svc.Create(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.DismissOrder(context.Background(), created.SessionId))

	last := stream.events[len(stream.events)-1]
	assert.Equal(t, model.StreamOrderBannerHidden, last.Type)
	assert.Equal(t, created.SessionId, last.SessionId)
}
