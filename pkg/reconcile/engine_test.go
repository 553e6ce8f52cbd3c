package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echomart-be/pkg/store"
)

func newTestSession(msgs ...store.ChatMessage) *store.Session {
	return &store.Session{ID: "sess-1", Messages: msgs}
}

func remote(text string) store.ChatMessage {
	return store.ChatMessage{Sender: store.SenderRemote, Text: text}
}

func local(text string) store.ChatMessage {
	return store.ChatMessage{Sender: store.SenderLocal, Text: text}
}

func TestProcessIsIdempotentOnReplay(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(
		local("show me mugs"),
		remote("Added Classic Mug to your cart for 650 rupees"),
	)

	res := e.Process(s)
	require.True(t, res.CartChanged)
	require.Len(t, s.Cart, 1)

	// Same transcript, second invocation: nothing moves.
	res = e.Process(s)
	assert.False(t, res.CartChanged)
	assert.Nil(t, res.OrderPlaced)
	assert.Len(t, s.Cart, 1)
	assert.Equal(t, 1, s.Cart[0].Quantity)
}

func TestPendingThenBareAddComposes(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(
		remote("You want 1 Black Logo Hoodie in size L. That will be 1499 rupees"),
	)

	e.Process(s)
	require.NotNil(t, s.PendingItem)
	assert.Equal(t, "black_logo_hoodie", s.PendingItem.ID)
	assert.Empty(t, s.Cart)

	s.Messages = append(s.Messages, remote("I've added that to your cart"))
	res := e.Process(s)

	require.True(t, res.CartChanged)
	require.Len(t, s.Cart, 1)
	assert.Equal(t, "Black Logo Hoodie", s.Cart[0].Name)
	assert.Equal(t, 1, s.Cart[0].Quantity)
	assert.Equal(t, 1499.0, s.Cart[0].UnitPrice)
	assert.Nil(t, s.PendingItem, "pending item is consumed by the add")
}

func TestDirectAddTemplate(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(remote("Added Classic Mug to your cart for 650 rupees"))

	res := e.Process(s)

	require.True(t, res.CartChanged)
	require.Len(t, s.Cart, 1)
	assert.Equal(t, "classic_mug", s.Cart[0].ID)
	assert.Equal(t, 1, s.Cart[0].Quantity)
	assert.Equal(t, 650.0, s.Cart[0].UnitPrice)
}

func TestAddFallsBackToPreviousAgentMessage(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	// Both messages land in one batch: the add-confirmation itself carries
	// no item, there is no pending item, so the engine re-scans the
	// second-to-last agent message.
	s := newTestSession(
		remote("Added Classic Mug to your cart for 650 rupees"),
		remote("Done! It's in your cart now, I've added it."),
	)

	res := e.Process(s)

	require.True(t, res.CartChanged)
	require.Len(t, s.Cart, 1)
	assert.Equal(t, "classic_mug", s.Cart[0].ID)
}

func TestQuantityMergeKeepsFirstSeenPrice(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(remote("Added Classic Mug to your cart for 650 rupees"))
	e.Process(s)

	// Same product confirmed again at a different spoken price and a
	// quantity of two.
	s.Messages = append(s.Messages,
		remote("You want 2 Classic Mug in size M, I've added them to your cart. That will be 1200 rupees"),
	)
	e.Process(s)

	require.Len(t, s.Cart, 1)
	assert.Equal(t, 3, s.Cart[0].Quantity)
	assert.Equal(t, 650.0, s.Cart[0].UnitPrice, "first-seen price is retained")
}

func TestOrderFinalizationSnapshotsAndClearsCart(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(remote("Added Classic Mug to your cart for 650 rupees"))
	e.Process(s)

	s.Messages = append(s.Messages,
		remote("Your order ORD-123 has been created successfully, total: 1499"),
	)
	res := e.Process(s)

	require.NotNil(t, res.OrderPlaced)
	require.NotNil(t, s.LastOrder)
	assert.Equal(t, "ORD-123", s.LastOrder.OrderID)
	assert.Equal(t, 1499.0, s.LastOrder.Total, "spoken total wins over the computed one")
	require.Len(t, s.LastOrder.Lines, 1)
	assert.Equal(t, "classic_mug", s.LastOrder.Lines[0].ID)
	assert.True(t, s.OrderVisible)
	assert.Empty(t, s.Cart, "cart is cleared after checkout")
}

func TestPendingItemSurvivesOrderFinalization(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(remote("Added Classic Mug to your cart for 650 rupees"))
	e.Process(s)

	s.Messages = append(s.Messages, remote("You want 1 Black Logo Hoodie in size L. That will be 1499 rupees"))
	e.Process(s)
	require.NotNil(t, s.PendingItem)

	s.Messages = append(s.Messages, remote("Your order ORD-5 has been created successfully, total: 650"))
	res := e.Process(s)
	require.NotNil(t, res.OrderPlaced)
	require.NotNil(t, s.PendingItem, "checkout must not consume the pending item")

	// The pending item is still consumable by a later bare add.
	s.Messages = append(s.Messages, remote("I've added that to your cart"))
	res = e.Process(s)

	require.True(t, res.CartChanged)
	require.Len(t, s.Cart, 1)
	assert.Equal(t, "black_logo_hoodie", s.Cart[0].ID)
	assert.Nil(t, s.PendingItem)
}

func TestOrderTotalComputedWhenNotSpoken(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(
		remote("Added Classic Mug to your cart for 650 rupees"),
	)
	e.Process(s)

	s.Messages = append(s.Messages, remote("Your order has been confirmed!"))
	res := e.Process(s)

	require.NotNil(t, res.OrderPlaced)
	assert.Equal(t, 650.0, s.LastOrder.Total)
	// No ORD token spoken: a synthetic code is minted.
	assert.Contains(t, s.LastOrder.OrderID, "ORD-")
}

func TestEmptyCartFinalizationIsSkipped(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	// Receipt lines are present in the text, but the cart is empty and the
	// text-recovery branch is off.
	s := newTestSession(
		remote("Your order ORD-9 has been created successfully: 1 x Black Logo Hoodie (size M): INR 1499"),
	)

	res := e.Process(s)

	assert.Nil(t, res.OrderPlaced)
	assert.Nil(t, s.LastOrder)
	assert.False(t, s.OrderVisible)
}

func TestUnrecognizedMessageIsASilentMiss(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(remote("Added Classic Mug to your cart for 650 rupees"))
	e.Process(s)

	s.Messages = append(s.Messages, remote("Sure, here are some options"))
	res := e.Process(s)

	assert.False(t, res.CartChanged)
	assert.Nil(t, res.OrderPlaced)
	assert.Len(t, s.Cart, 1)
	assert.Nil(t, s.PendingItem)
	assert.Nil(t, s.LastOrder)
}

func TestLocalMessagesNeverDriveState(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(
		local("Added Classic Mug to your cart for 650 rupees"),
		local("Your order ORD-1 has been created successfully"),
	)

	res := e.Process(s)

	assert.False(t, res.CartChanged)
	assert.Empty(t, s.Cart)
	assert.Nil(t, s.LastOrder)
}

func TestAutoHideClearsBannerAfterDwell(t *testing.T) {
	hidden := make(chan string, 1)
	e := NewEngine(30*time.Millisecond, func(sessionID string) { hidden <- sessionID })

	s := newTestSession(remote("Added Classic Mug to your cart for 650 rupees"))
	e.Process(s)
	s.Messages = append(s.Messages, remote("Your order ORD-1 has been created successfully, total: 650"))
	e.Process(s)

	select {
	case id := <-hidden:
		assert.Equal(t, "sess-1", id)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("auto-hide never fired")
	}

	s.Lock()
	defer s.Unlock()
	assert.False(t, s.OrderVisible)
	assert.NotNil(t, s.LastOrder, "auto-hide only touches visibility")
}

func TestStaleDwellTimerDoesNotHideNewerOrder(t *testing.T) {
	e := NewEngine(60*time.Millisecond, nil)

	s := newTestSession(remote("Added Classic Mug to your cart for 650 rupees"))
	e.Process(s)
	s.Messages = append(s.Messages, remote("Your order ORD-A has been created successfully, total: 650"))
	e.Process(s)

	// Second order lands well inside the first order's dwell window.
	time.Sleep(20 * time.Millisecond)
	s.Messages = append(s.Messages, remote("Added Blue Travel Mug to your cart for 950 rupees"))
	e.Process(s)
	s.Messages = append(s.Messages, remote("Your order ORD-B has been created successfully, total: 950"))
	e.Process(s)

	// Past the moment ORD-A's original timer would have fired.
	time.Sleep(60 * time.Millisecond)

	s.Lock()
	require.NotNil(t, s.LastOrder)
	assert.Equal(t, "ORD-B", s.LastOrder.OrderID)
	assert.True(t, s.OrderVisible, "newer order's banner must survive the stale timer")
	s.Unlock()

	// ORD-B's own dwell still completes.
	time.Sleep(60 * time.Millisecond)
	s.Lock()
	assert.False(t, s.OrderVisible)
	s.Unlock()
}

func TestDismissOrderCancelsTimerAndKeepsOrder(t *testing.T) {
	hidden := make(chan string, 1)
	e := NewEngine(30*time.Millisecond, func(sessionID string) { hidden <- sessionID })

	s := newTestSession(remote("Added Classic Mug to your cart for 650 rupees"))
	e.Process(s)
	s.Messages = append(s.Messages, remote("Your order ORD-1 has been created successfully, total: 650"))
	e.Process(s)

	e.DismissOrder(s)

	s.Lock()
	assert.False(t, s.OrderVisible)
	assert.NotNil(t, s.LastOrder)
	s.Unlock()

	select {
	case <-hidden:
		t.Fatal("dwell timer fired after explicit dismiss")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestSnapshotIsDetachedFromSession(t *testing.T) {
	e := NewEngine(DefaultDwell, nil)
	s := newTestSession(remote("Added Classic Mug to your cart for 650 rupees"))
	e.Process(s)

	view := Snapshot(s)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 650.0, view.Subtotal)

	view.Lines[0].Quantity = 99

	s.Lock()
	defer s.Unlock()
	assert.Equal(t, 1, s.Cart[0].Quantity, "mutating a snapshot must not leak into the session")
}
