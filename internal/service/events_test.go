package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingSink struct{}

func (failingSink) Broadcast([]byte) error { return errors.New("closed") }

func TestEventPublisher_FansOutToEverySink(t *testing.T) {
	a, b := newRecordingSink(), newRecordingSink()
	p := NewEventPublisher(zap.NewNop(), failingSink{}, a, b)

	p.Publish(map[string]interface{}{"action": "distribution_created", "total_qty": 5})

	for _, sink := range []*recordingSink{a, b} {
		select {
		case msg := <-sink.messages:
			var payload map[string]interface{}
			require.NoError(t, json.Unmarshal(msg, &payload))
			assert.Equal(t, "distribution_created", payload["action"])
			assert.Equal(t, 5.0, payload["total_qty"])
		case <-time.After(time.Second):
			t.Fatal("sink not reached")
		}
	}
}

func TestEventPublisher_NilIsNoop(t *testing.T) {
	var p *EventPublisher
	assert.NotPanics(t, func() { p.Publish(map[string]interface{}{"action": "x"}) })
}

func TestDistribute_PublishesEvent(t *testing.T) {
	sink := newRecordingSink()
	f := newFixture(NewEventPublisher(zap.NewNop(), sink))

	_, err := f.distribution.Distribute(DistributionRequest{OutletID: "outlet_3", Items: []DistributionItem{{ProductID: 2, Qty: 12}}})
	require.NoError(t, err)

	select {
	case msg := <-sink.messages:
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(msg, &payload))
		assert.Equal(t, "distribution_created", payload["action"])
		assert.Equal(t, "12 pcs dikirim ke Cabang Patemon", payload["message"])
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}
