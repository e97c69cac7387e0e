package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-seeder/internal/usecase"
	"github.com/DRSN-tech/storefront-seeder/pkg/clients"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	lockKey       = "seed:import:lock"
	lastResultKey = "seed:import:last"
)

// releaseScript снимает блокировку, только если она принадлежит владельцу токена.
var releaseScript = r.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RunRepo — реестр запусков импорта поверх Redis.
type RunRepo struct {
	client *clients.RedisClient
	logger logger.Logger
}

func NewRunRepo(client *clients.RedisClient, logger logger.Logger) *RunRepo {
	return &RunRepo{
		client: client,
		logger: logger,
	}
}

// Acquire занимает слот импорта через SET NX с TTL. Возвращает токен владельца.
func (rr *RunRepo) Acquire(ctx context.Context, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	ok, err := rr.client.Client.SetNX(ctx, lockKey, token, ttl).Result()
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}
	if !ok {
		return "", e.ErrImportInProgress
	}

	return token, nil
}

// Release освобождает слот, если он всё ещё принадлежит token.
func (rr *RunRepo) Release(ctx context.Context, token string) error {
	released, err := releaseScript.Run(ctx, rr.client.Client, []string{lockKey}, token).Int()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if released == 0 {
		rr.logger.Warnf("import lock was not held by token %s (expired?)", token)
	}

	return nil
}

// SaveResult сохраняет итог импорта без срока жизни.
func (rr *RunRepo) SaveResult(ctx context.Context, res *usecase.ImportCatalogRes) error {
	data, err := json.Marshal(converter.ToRedisModel(res))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := rr.client.Client.Set(ctx, lastResultKey, data, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (rr *RunRepo) LastResult(ctx context.Context) (*usecase.ImportCatalogRes, error) {
	data, err := rr.client.Client.Get(ctx, lastResultKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.ErrNoImportRuns
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ImportResultRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ToUseCase(&model), nil
}
