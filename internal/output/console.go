package output

import (
	"fmt"
	"io"
	"sync"
)

type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{w: w}
}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.w, "[%s] %s\n", topic, msg); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}
