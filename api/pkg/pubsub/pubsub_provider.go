package pubsub

import (
	"fmt"

	"github.com/Artox/open-build-service/api/pkg/config"
)

type Provider string

const (
	ProviderNats Provider = "nats"
	ProviderNoop Provider = "noop"
)

// New builds the configured message bus
func New(cfg config.PubSub) (PubSub, error) {
	switch Provider(cfg.Provider) {
	case ProviderNats, "":
		if cfg.Server.EmbeddedNatsServerEnabled {
			return NewInMemoryNats(cfg.StoreDir, cfg.Server.Token)
		}
		if cfg.Server.URL == "" {
			return nil, fmt.Errorf("NATS_URL is required when the embedded nats server is disabled")
		}
		return NewNats(cfg.Server.URL, cfg.Server.Token)
	case ProviderNoop:
		return NewNoop(), nil
	default:
		return nil, fmt.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
