package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// JSONOutput appends events as JSON lines, partitioned by topic and event day:
// <basePath>/<topic>/date=YYYY-MM-DD/events.jsonl
type JSONOutput struct {
	basePath string
	mu       sync.Mutex
	files    map[string]*os.File
}

func NewJSONOutput(basePath string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		files:    make(map[string]*os.File),
	}
}

type timestamped struct {
	Timestamp time.Time `json:"timestamp"`
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	var event timestamped
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}
	if event.Timestamp.IsZero() {
		return fmt.Errorf("event on %s has no timestamp", topic)
	}

	partition := "date=" + event.Timestamp.UTC().Format("2006-01-02")
	dir := filepath.Join(j.basePath, topic, partition)

	j.mu.Lock()
	defer j.mu.Unlock()

	key := topic + "/" + partition
	file, ok := j.files[key]
	if !ok {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		var err error
		file, err = os.OpenFile(filepath.Join(dir, "events.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		j.files[key] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	var errs []error
	for key, file := range j.files {
		if err := file.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(j.files, key)
	}
	return errors.Join(errs...)
}
