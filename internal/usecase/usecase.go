package usecase

import "context"

type CatalogUC interface {
	ImportCatalog(ctx context.Context, req *ImportCatalogReq) (*ImportCatalogRes, error)
	LastImport(ctx context.Context) (*ImportCatalogRes, error)
}

type BootstrapUC interface {
	Bootstrap(ctx context.Context) (*BootstrapRes, error)
}
