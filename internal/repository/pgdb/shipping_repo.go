package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/tr"
	"github.com/jimlawless/whereami"
)

// ShippingRepo хранит способы доставки, подключённые к зонам.
type ShippingRepo struct {
	pool tr.Querier
}

func NewShippingRepo(pool tr.Querier) *ShippingRepo {
	return &ShippingRepo{pool: pool}
}

func (s *ShippingRepo) ListZoneMethods(ctx context.Context, zoneID int64) ([]domain.ShippingMethod, error) {
	query := `
		SELECT instance_id, zone_id, method_id, method_order, is_enabled
		FROM shipping_zone_methods
		WHERE zone_id = $1
		ORDER BY method_order, instance_id;
	`

	rows, err := tr.QuerierFromCtx(ctx, s.pool).Query(ctx, query, zoneID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.ShippingMethod, 0)
	for rows.Next() {
		var model converter.ShippingMethodModel
		if err := rows.Scan(&model.InstanceID, &model.ZoneID, &model.MethodID, &model.Order, &model.Enabled); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *converter.ShippingMethodToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// AddZoneMethod подключает способ доставки к зоне последним по порядку.
func (s *ShippingRepo) AddZoneMethod(ctx context.Context, zoneID int64, methodID string) (*domain.ShippingMethod, error) {
	query := `
		INSERT INTO shipping_zone_methods (zone_id, method_id, method_order)
		SELECT $1, $2, COALESCE(MAX(method_order), 0) + 1
		FROM shipping_zone_methods
		WHERE zone_id = $1
		RETURNING instance_id, zone_id, method_id, method_order, is_enabled;
	`

	var model converter.ShippingMethodModel
	if err := tr.QuerierFromCtx(ctx, s.pool).QueryRow(ctx, query, zoneID, methodID).
		Scan(&model.InstanceID, &model.ZoneID, &model.MethodID, &model.Order, &model.Enabled); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ShippingMethodToEntity(&model), nil
}
