package kafka

import (
	"context"

	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
)

// NoopPublisher используется, когда брокеры Kafka не настроены: события только пишутся в лог.
type NoopPublisher struct {
	logger logger.Logger
}

func NewNoopPublisher(logger logger.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (n *NoopPublisher) PublishProductImported(_ context.Context, ev *usecase.ProductImportedEvent) error {
	n.logger.Debugf("event publishing disabled, product imported: sku=%s id=%d", ev.SKU, ev.ProductID)
	return nil
}

func (n *NoopPublisher) PublishImportCompleted(_ context.Context, res *usecase.ImportCatalogRes) error {
	n.logger.Debugf("event publishing disabled, import completed: products=%d variations=%d", res.Products, res.Variations)
	return nil
}
