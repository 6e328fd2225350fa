package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fitnesshub/fitness-app/internal/domain"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func testEvent() domain.FeedEvent {
	return domain.FeedEvent{
		Type:   domain.FeedPostCreated,
		PostID: "6671a0c2f1d2a3b4c5d6e7f8",
		UserID: "6671a0c2f1d2a3b4c5d6e7f9",
		At:     time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestBroker_Publish(t *testing.T) {
	db, mock := redismock.NewClientMock()
	broker := NewBroker(db, "")

	event := testEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mock.ExpectPublish(DefaultChannel, string(payload)).SetVal(1)
	require.NoError(t, broker.Publish(context.Background(), event))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBroker_Publish_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	broker := NewBroker(db, "custom")

	event := testEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mock.ExpectPublish("custom", string(payload)).SetErr(errors.New("connection refused"))
	err = broker.Publish(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish to custom")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := testEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msgs := make(chan *redis.Message, 3)
	msgs <- &redis.Message{Channel: DefaultChannel, Payload: "{not json"}
	msgs <- &redis.Message{Channel: DefaultChannel, Payload: string(payload)}
	close(msgs)

	out := make(chan domain.FeedEvent, 3)
	relay(ctx, msgs, out)
	close(out)

	var got []domain.FeedEvent
	for e := range out {
		got = append(got, e)
	}
	require.Len(t, got, 1)
	assert.Equal(t, event.Type, got[0].Type)
	assert.Equal(t, event.PostID, got[0].PostID)
	assert.True(t, event.At.Equal(got[0].At))
}

func TestRelay_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	msgs := make(chan *redis.Message)
	out := make(chan domain.FeedEvent)

	done := make(chan struct{})
	go func() {
		relay(ctx, msgs, out)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after cancel")
	}
}
