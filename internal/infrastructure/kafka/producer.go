package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/cfg"
	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Типы событий каталога
const (
	EventProductImported = "catalog.product_imported"
	EventImportCompleted = "catalog.import_completed"

	importCompletedKey = "catalog-import"

	topicPartitions        = 1
	topicReplicationFactor = 1
)

// Producer публикует события импорта каталога в Kafka.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
	now    func() time.Time
}

// NewProducer создаёт асинхронный writer: WriteMessages не ждёт BatchTimeout,
// ошибки доставки пишутся в лог из Completion, недоставленные сообщения дописываются в Close.
func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	p := &Producer{
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}

	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion:   p.onDelivered,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}

	return p
}

func (p *Producer) onDelivered(messages []kafka.Message, err error) {
	if err == nil {
		return
	}

	for _, msg := range messages {
		p.logger.Warnf("failed to deliver event to topic %s, key=%s: %v", p.cfg.Topic, msg.Key, err)
	}
}

// PublishProductImported отправляет событие о сохранённом товаре. Ключ сообщения — SKU.
func (p *Producer) PublishProductImported(ctx context.Context, ev *usecase.ProductImportedEvent) error {
	value, err := p.ProductImportedPayload(ev)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.write(ctx, ev.SKU, value)
}

// PublishImportCompleted отправляет итог импорта.
func (p *Producer) PublishImportCompleted(ctx context.Context, res *usecase.ImportCatalogRes) error {
	value, err := p.ImportCompletedPayload(res)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.write(ctx, importCompletedKey, value)
}

func (p *Producer) write(ctx context.Context, key string, value []byte) error {
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// EnsureTopic создаёт топик событий, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.DialContext(context.Background(), "tcp", p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     topicPartitions,
			ReplicationFactor: topicReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// ProductImportedPayload сериализует событие о товаре в protobuf Struct.
func (p *Producer) ProductImportedPayload(ev *usecase.ProductImportedEvent) ([]byte, error) {
	return p.envelope(EventProductImported, map[string]any{
		"product_id": ev.ProductID,
		"sku":        ev.SKU,
		"kind":       string(ev.Kind),
		"name":       ev.Name,
		"variations": ev.Variations,
	})
}

// ImportCompletedPayload сериализует итог импорта в protobuf Struct.
func (p *Producer) ImportCompletedPayload(res *usecase.ImportCatalogRes) ([]byte, error) {
	return p.envelope(EventImportCompleted, map[string]any{
		"site_url":           res.SiteURL,
		"products":           res.Products,
		"variations":         res.Variations,
		"skipped":            res.Skipped,
		"dropped_variations": res.DroppedVariations,
		"started_at":         res.StartedAt.UTC().Format(time.RFC3339),
		"finished_at":        res.FinishedAt.UTC().Format(time.RFC3339),
	})
}

func (p *Producer) envelope(eventType string, payload map[string]any) ([]byte, error) {
	event, err := structpb.NewStruct(map[string]any{
		"event_id":        uuid.NewString(),
		"event_type":      eventType,
		"event_timestamp": p.now().UnixNano(),
		"payload":         payload,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return proto.Marshal(event)
}
