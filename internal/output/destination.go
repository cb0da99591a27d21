// Package output publishes extraction events to the configured destination.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// New builds the destination named by cfg.Destination. "none" and "" return nil.
func New(cfg models.EventsConfig) (Destination, error) {
	switch cfg.Destination {
	case "", "none":
		return nil, nil
	case "console":
		return NewConsoleOutput(os.Stdout), nil
	case "file":
		return NewJSONOutput(cfg.FilePath), nil
	case "kafka":
		producer, err := NewSaramaProducer(cfg)
		if err != nil {
			return nil, err
		}
		return producer, nil
	default:
		return nil, fmt.Errorf("unsupported events destination: %s", cfg.Destination)
	}
}

// Publish marshals event as JSON and writes it to topic. A nil destination is a no-op.
func Publish(dest Destination, topic string, event any) error {
	if dest == nil {
		return nil
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}
	return dest.WriteMessage(topic, msg)
}
