package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/Artox/open-build-service/api/pkg/types"
)

type Publisher interface {
	// Publish topic to message broker with payload.
	Publish(ctx context.Context, topic string, payload []byte) error
}

//go:generate mockgen -source $GOFILE -destination pubsub_mocks.go -package $GOPACKAGE

type PubSub interface {
	Publisher
	Subscribe(ctx context.Context, topic string, handler func(payload []byte) error) (Subscription, error)

	// StreamConsume delivers the messages of a persisted stream that arrive from now on
	StreamConsume(ctx context.Context, stream, subject string, handler func(msg *Message) error) (Subscription, error)

	Close() error
}

type Message struct {
	Subject string
	Data    []byte

	msg jetstream.Msg
}

func (m *Message) Ack() error {
	if m.msg == nil {
		return nil
	}
	return m.msg.Ack()
}

type Subscription interface {
	Unsubscribe() error
}

const (
	// ProjectsStream keeps the project events for late consumers
	ProjectsStream = "PROJECTS"

	ProjectEventsTopic = "projects.events"
	// StatusInvalidateTopic carries the name of a project whose status snapshot is stale
	StatusInvalidateTopic = "status.invalidate"
)

// PublishProjectEvent sends a project event, stamping the creation time
func PublishProjectEvent(ctx context.Context, publisher Publisher, event *types.ProjectEvent) error {
	if event.Created.IsZero() {
		event.Created = time.Now()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal project event: %w", err)
	}
	return publisher.Publish(ctx, ProjectEventsTopic, payload)
}

func ParseProjectEvent(payload []byte) (*types.ProjectEvent, error) {
	var event types.ProjectEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project event: %w", err)
	}
	return &event, nil
}

// InvalidateStatus asks every replica to drop the status snapshot of the project
func InvalidateStatus(ctx context.Context, publisher Publisher, project string) error {
	return publisher.Publish(ctx, StatusInvalidateTopic, []byte(project))
}
