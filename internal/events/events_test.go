// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/recommend"
)

type failingPublisher struct {
	mu    sync.Mutex
	calls int
}

func (f *failingPublisher) Publish(string, ...*message.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return errors.New("broker unavailable")
}

func (f *failingPublisher) Close() error { return nil }

type countingRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func (r *countingRefresher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BreakerMaxFailures = 2
	cfg.BreakerTimeout = time.Minute
	cfg.CloseTimeout = time.Second
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty topic", func(c *Config) { c.Topic = "" }, true},
		{"negative buffer", func(c *Config) { c.BufferSize = -1 }, true},
		{"zero failures", func(c *Config) { c.BreakerMaxFailures = 0 }, true},
		{"zero timeout", func(c *Config) { c.BreakerTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSerializeDeserialize(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := NewRatingSubmitted(recommend.Rating{UserID: 3, ItemID: 11, Value: 4.5, CreatedAt: created})
	if event.EventID == "" {
		t.Fatal("NewRatingSubmitted() EventID is empty")
	}

	data, err := SerializeEvent(event)
	if err != nil {
		t.Fatalf("SerializeEvent() error = %v", err)
	}
	got, err := DeserializeEvent(data)
	if err != nil {
		t.Fatalf("DeserializeEvent() error = %v", err)
	}

	r := got.ToRating()
	if r.UserID != 3 || r.ItemID != 11 || r.Value != 4.5 || !r.CreatedAt.Equal(created) {
		t.Errorf("ToRating() = %+v, want user 3 item 11 rating 4.5 at %v", r, created)
	}
}

func TestDeserializeEvent_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `rating`},
		{"missing event id", `{"user_id":1,"item_id":2,"rating":5}`},
		{"zero user", `{"event_id":"e1","user_id":0,"item_id":2,"rating":5}`},
		{"zero item", `{"event_id":"e1","user_id":1,"item_id":0,"rating":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DeserializeEvent([]byte(tt.data)); !errors.Is(err, ErrInvalidEvent) {
				t.Errorf("DeserializeEvent() error = %v, want ErrInvalidEvent", err)
			}
		})
	}

	if _, err := SerializeEvent(nil); !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("SerializeEvent(nil) error = %v, want ErrInvalidEvent", err)
	}
}

func TestPublisher_PublishRating(t *testing.T) {
	cfg := testConfig()
	bus := NewBus(cfg, watermill.NopLogger{})
	defer bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msgs, err := bus.Subscribe(ctx, cfg.Topic)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	pub, err := NewPublisher(bus, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}

	pubCtx := logging.ContextWithCorrelationID(ctx, "abc12345")
	if err := pub.PublishRating(pubCtx, recommend.Rating{UserID: 7, ItemID: 6, Value: 5}); err != nil {
		t.Fatalf("PublishRating() error = %v", err)
	}

	select {
	case msg := <-msgs:
		msg.Ack()
		if got := msg.Metadata.Get("event_type"); got != EventTypeRatingSubmitted {
			t.Errorf("event_type = %q, want %q", got, EventTypeRatingSubmitted)
		}
		if got := msg.Metadata.Get("correlation_id"); got != "abc12345" {
			t.Errorf("correlation_id = %q, want abc12345", got)
		}
		event, err := DeserializeEvent(msg.Payload)
		if err != nil {
			t.Fatalf("DeserializeEvent() error = %v", err)
		}
		if event.EventID != msg.UUID {
			t.Errorf("message UUID = %q, want event ID %q", msg.UUID, event.EventID)
		}
		if event.UserID != 7 || event.ItemID != 6 {
			t.Errorf("event = %+v, want user 7 item 6", event)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for rating event")
	}
}

func TestPublisher_CircuitBreakerOpens(t *testing.T) {
	backend := &failingPublisher{}
	pub, err := NewPublisher(backend, testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}

	ctx := context.Background()
	r := recommend.Rating{UserID: 1, ItemID: 1, Value: 4}
	for i := 0; i < 2; i++ {
		if err := pub.PublishRating(ctx, r); err == nil {
			t.Fatalf("PublishRating() #%d error = nil, want backend error", i+1)
		}
	}

	if got := pub.BreakerState(); got != "open" {
		t.Fatalf("BreakerState() = %q, want open", got)
	}
	if err := pub.PublishRating(ctx, r); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("PublishRating() with open breaker error = %v, want ErrOpenState", err)
	}
	if backend.calls != 2 {
		t.Errorf("backend Publish called %d times, want 2", backend.calls)
	}
}

func TestPublisher_Closed(t *testing.T) {
	pub, err := NewPublisher(&failingPublisher{}, testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := pub.PublishRating(context.Background(), recommend.Rating{UserID: 1, ItemID: 1, Value: 4}); !errors.Is(err, ErrPublisherClosed) {
		t.Errorf("PublishRating() after Close error = %v, want ErrPublisherClosed", err)
	}
}

func TestNewPublisher_Invalid(t *testing.T) {
	if _, err := NewPublisher(nil, testConfig(), zerolog.Nop()); err == nil {
		t.Error("NewPublisher(nil) error = nil, want error")
	}
	cfg := testConfig()
	cfg.Topic = ""
	if _, err := NewPublisher(&failingPublisher{}, cfg, zerolog.Nop()); err == nil {
		t.Error("NewPublisher(empty topic) error = nil, want error")
	}
}

func TestConsumer_Handle(t *testing.T) {
	refresher := &countingRefresher{}
	c, err := NewConsumer(&failingSubscriber{}, refresher, testConfig(), zerolog.Nop(), watermill.NopLogger{})
	if err != nil {
		t.Fatalf("NewConsumer() error = %v", err)
	}

	data, _ := SerializeEvent(NewRatingSubmitted(recommend.Rating{UserID: 2, ItemID: 3, Value: 5}))
	if err := c.Handle(message.NewMessage(watermill.NewUUID(), data)); err != nil {
		t.Errorf("Handle(valid) error = %v", err)
	}
	if err := c.Handle(message.NewMessage(watermill.NewUUID(), []byte("garbage"))); err != nil {
		t.Errorf("Handle(malformed) error = %v, want nil (dropped)", err)
	}

	refresher.err = errors.New("store unavailable")
	other, _ := SerializeEvent(NewRatingSubmitted(recommend.Rating{UserID: 2, ItemID: 4, Value: 4}))
	if err := c.Handle(message.NewMessage(watermill.NewUUID(), other)); err != nil {
		t.Errorf("Handle() with failing refresh error = %v, want nil", err)
	}

	if c.Consumed() != 2 || c.Rejected() != 1 {
		t.Errorf("Consumed() = %d, Rejected() = %d, want 2, 1", c.Consumed(), c.Rejected())
	}
	if refresher.count() != 2 {
		t.Errorf("Refresh called %d times, want 2", refresher.count())
	}
}

func TestConsumer_SkipsRedeliveredEvents(t *testing.T) {
	refresher := &countingRefresher{}
	c, err := NewConsumer(&failingSubscriber{}, refresher, testConfig(), zerolog.Nop(), watermill.NopLogger{})
	if err != nil {
		t.Fatalf("NewConsumer() error = %v", err)
	}

	data, _ := SerializeEvent(NewRatingSubmitted(recommend.Rating{UserID: 1, ItemID: 1, Value: 5}))
	for i := 0; i < 3; i++ {
		if err := c.Handle(message.NewMessage(watermill.NewUUID(), data)); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}

	if c.Consumed() != 1 || c.Duplicates() != 2 {
		t.Errorf("Consumed() = %d, Duplicates() = %d, want 1, 2", c.Consumed(), c.Duplicates())
	}
	if refresher.count() != 1 {
		t.Errorf("Refresh called %d times, want 1", refresher.count())
	}
}

func TestConsumer_Run(t *testing.T) {
	cfg := testConfig()
	bus := NewBus(cfg, watermill.NopLogger{})
	defer bus.Close()

	refresher := &countingRefresher{}
	consumer, err := NewConsumer(bus, refresher, cfg, zerolog.Nop(), watermill.NopLogger{})
	if err != nil {
		t.Fatalf("NewConsumer() error = %v", err)
	}
	pub, err := NewPublisher(bus, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Run(ctx) }()

	// gochannel drops messages published before the router subscribes.
	deadline := time.Now().Add(5 * time.Second)
	for consumer.Consumed() == 0 && time.Now().Before(deadline) {
		if err := pub.PublishRating(ctx, recommend.Rating{UserID: 1, ItemID: 2, Value: 4}); err != nil {
			t.Fatalf("PublishRating() error = %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	if consumer.Consumed() == 0 {
		t.Fatal("consumer processed no events")
	}
	if refresher.count() == 0 {
		t.Error("Refresh was not called for a consumed event")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

type failingSubscriber struct{}

func (failingSubscriber) Subscribe(context.Context, string) (<-chan *message.Message, error) {
	return nil, errors.New("not subscribed")
}

func (failingSubscriber) Close() error { return nil }
