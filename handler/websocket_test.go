package handler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"cinema_ticket/constants"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	fail     bool
	closed   bool
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	if messageType != websocket.TextMessage {
		return errors.New("unexpected message type")
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeConn) received() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.messages...)
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	a := hub.Register(&fakeConn{})
	b := hub.Register(&fakeConn{})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, hub.Len())

	hub.Unregister(a)
	assert.Equal(t, 1, hub.Len())
	hub.Unregister(a)
	assert.Equal(t, 1, hub.Len())
}

func TestHub_BroadcastDropsBrokenClients(t *testing.T) {
	hub := NewHub()
	healthy := &fakeConn{}
	broken := &fakeConn{fail: true}
	hub.Register(healthy)
	hub.Register(broken)

	hub.Broadcast([]byte(`{"count":1}`))

	assert.Equal(t, [][]byte{[]byte(`{"count":1}`)}, healthy.messages)
	assert.True(t, broken.closed)
	assert.False(t, healthy.closed)
	assert.Equal(t, 1, hub.Len())
}

func TestHubNotifier(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(conn)

	update := SeatUpdate{AvailableSeats: []string{"1-1", "1-2"}, Count: 2}
	require.NoError(t, HubNotifier{Hub: hub}.NotifySeats(context.Background(), update))

	require.Len(t, conn.messages, 1)
	var got SeatUpdate
	require.NoError(t, json.Unmarshal(conn.messages[0], &got))
	assert.Equal(t, update.AvailableSeats, got.AvailableSeats)
	assert.Equal(t, 2, got.Count)
}

func TestRedisSeatRelay(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(conn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- RelaySeatUpdates(ctx, client, constants.SEAT_CHANNEL, hub, zap.NewNop())
	}()

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub(constants.SEAT_CHANNEL)[constants.SEAT_CHANNEL] == 1
	}, 2*time.Second, 10*time.Millisecond)

	notifier := RedisSeatNotifier{Client: client, Channel: constants.SEAT_CHANNEL}
	update := SeatUpdate{AvailableSeats: []string{"1-1", "1-3"}, Count: 2}
	require.NoError(t, notifier.NotifySeats(context.Background(), update))

	require.Eventually(t, func() bool {
		return len(conn.received()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	var got SeatUpdate
	require.NoError(t, json.Unmarshal(conn.received()[0], &got))
	assert.Equal(t, update.AvailableSeats, got.AvailableSeats)
	assert.Equal(t, 2, got.Count)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop after cancel")
	}
}

func TestRedisSeatNotifier_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	err = RedisSeatNotifier{Client: client, Channel: constants.SEAT_CHANNEL}.
		NotifySeats(context.Background(), SeatUpdate{})
	assert.Error(t, err)
}
