package output

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

type SaramaProducer struct {
	producer    sarama.SyncProducer
	topicPrefix string
}

func NewSaramaProducer(cfg models.EventsConfig) (*SaramaProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // required by SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	slog.Info("sarama producer created", "brokers", brokerList)
	return NewSaramaProducerFrom(producer, cfg.TopicPrefix), nil
}

// NewSaramaProducerFrom wraps an existing producer; topics are prefixed with topicPrefix.
func NewSaramaProducerFrom(producer sarama.SyncProducer, topicPrefix string) *SaramaProducer {
	return &SaramaProducer{producer: producer, topicPrefix: topicPrefix}
}

func (s *SaramaProducer) WriteMessage(topic string, msg []byte) error {
	if s.producer == nil {
		return fmt.Errorf("sarama producer is not initialized")
	}

	_, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topicPrefix + topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", s.topicPrefix+topic, err)
	}
	return nil
}

func (s *SaramaProducer) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}
