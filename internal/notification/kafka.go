package notification

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mxarte/artweek-backend/config"
	"github.com/mxarte/artweek-backend/internal/itinerary"
)

// Publisher wraps the Kafka writer for the saved-itinerary topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns nil when no brokers are configured; callers treat
// a nil publisher as "Kafka off" and use the in-process fallback.
func NewPublisher(cfg *config.Config) *Publisher {
	if cfg.KafkaBrokers == "" {
		log.Println("⚠️ Kafka not configured, notifications dispatch in-process")
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}

	log.Printf("✅ Kafka producer ready (topic=%s)", cfg.KafkaTopic)
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, key string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// StartConsumer runs the notification consumer loop until ctx is
// cancelled. Malformed messages are logged and skipped, never retried.
func StartConsumer(ctx context.Context, cfg *config.Config, svc *Service) {
	if cfg.KafkaBrokers == "" {
		return
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(cfg.KafkaBrokers, ","),
		Topic:    cfg.KafkaTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 1,
		MaxBytes: 1e6,
	})

	go func() {
		defer reader.Close()
		log.Printf("🔄 Kafka consumer started (topic=%s group=%s)", cfg.KafkaTopic, cfg.KafkaGroupID)

		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Println("🛑 Kafka consumer stopped")
					return
				}
				log.Printf("❌ Kafka read error: %v", err)
				time.Sleep(time.Second)
				continue
			}

			var notice itinerary.SavedNotice
			if err := json.Unmarshal(msg.Value, &notice); err != nil {
				log.Printf("❌ Dropping malformed notice (offset %d): %v", msg.Offset, err)
				continue
			}

			svc.ProcessSaved(ctx, notice)
		}
	}()
}
