package pubsub

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

type Nats struct {
	conn *nats.Conn
	js   jetstream.JetStream

	embeddedServer *server.Server
}

var _ PubSub = &Nats{}

// NewNats connects to an existing NATS server
func NewNats(url, token string) (*Nats, error) {
	opts := []nats.Option{
		nats.Name("obs-api"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("disconnected from nats")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("reconnected to nats")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return newNats(nc, nil)
}

func NewInMemoryNats(storeDir, token string) (*Nats, error) {
	opts := &server.Options{
		Host:          "127.0.0.1",
		Port:          server.RANDOM_PORT,
		NoSigs:        true,
		JetStream:     true,
		StoreDir:      storeDir,
		Authorization: token,
	}

	// Initialize new server with options
	ns, err := server.NewServer(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory nats server: %w", err)
	}

	// Start the server via goroutine
	go ns.Start()

	// Wait for server to be ready for connections
	if !ns.ReadyForConnections(4 * time.Second) {
		ns.Shutdown()
		return nil, fmt.Errorf("failed to start in-memory nats server")
	}

	var connectOpts []nats.Option
	if token != "" {
		connectOpts = append(connectOpts, nats.Token(token))
	}
	nc, err := nats.Connect(ns.ClientURL(), connectOpts...)
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return newNats(nc, ns)
}

func newNats(nc *nats.Conn, ns *server.Server) (*Nats, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     ProjectsStream,
		Subjects: []string{ProjectEventsTopic},
		MaxAge:   7 * 24 * time.Hour,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create jetstream stream: %w", err)
	}

	return &Nats{
		conn:           nc,
		js:             js,
		embeddedServer: ns,
	}, nil
}

func (n *Nats) Subscribe(_ context.Context, topic string, handler func(payload []byte) error) (Subscription, error) {
	sub, err := n.conn.Subscribe(topic, func(msg *nats.Msg) {
		err := handler(msg.Data)
		if err != nil {
			log.Err(err).Str("topic", topic).Msg("error handling message")
		}
	})
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (n *Nats) Publish(_ context.Context, topic string, payload []byte) error {
	return n.conn.Publish(topic, payload)
}

func (n *Nats) StreamConsume(ctx context.Context, stream, subject string, handler func(msg *Message) error) (Subscription, error) {
	s, err := n.js.Stream(ctx, stream)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream info: %w", err)
	}

	c, err := s.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		AckPolicy:      jetstream.AckExplicitPolicy,
		DeliverPolicy:  jetstream.DeliverNewPolicy,
		FilterSubjects: []string{subject},
		AckWait:        5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	cons, err := c.Consume(func(msg jetstream.Msg) {
		err := handler(&Message{
			Subject: msg.Subject(),
			Data:    msg.Data(),
			msg:     msg,
		})
		if err != nil {
			log.Err(err).Str("stream", stream).Msg("error handling message")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start msg consumer: %w", err)
	}

	return &consumerWrapper{consumer: cons}, nil
}

func (n *Nats) Close() error {
	if n.conn != nil {
		if err := n.conn.Drain(); err != nil {
			n.conn.Close()
		}
	}
	if n.embeddedServer != nil {
		n.embeddedServer.Shutdown()
		n.embeddedServer.WaitForShutdown()
	}
	return nil
}

type consumerWrapper struct {
	consumer jetstream.ConsumeContext
}

func (c *consumerWrapper) Unsubscribe() error {
	c.consumer.Stop()
	return nil
}
