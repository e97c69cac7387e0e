package grpc

import (
	"context"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DependencyCheck проверяет доступность зависимости (Postgres, Redis).
type DependencyCheck func(ctx context.Context) error

// WatchDependencies периодически выполняет проверки и публикует состояние сервиса каталога.
// Возвращается при отмене ctx.
func (s *GRPCServer) WatchDependencies(ctx context.Context, interval time.Duration, checks ...DependencyCheck) {
	s.refreshStatus(ctx, checks)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshStatus(ctx, checks)
		}
	}
}

func (s *GRPCServer) refreshStatus(ctx context.Context, checks []DependencyCheck) {
	status := healthpb.HealthCheckResponse_SERVING
	for _, check := range checks {
		if err := check(ctx); err != nil {
			s.logger.Warnf("dependency check failed: %v", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			break
		}
	}

	s.health.SetServingStatus(CatalogService, status)
}
