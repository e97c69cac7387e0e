package converter

import "github.com/DRSN-tech/storefront-seeder/internal/usecase"

func ToRedisModel(res *usecase.ImportCatalogRes) *ImportResultRedisModel {
	return &ImportResultRedisModel{
		SiteURL:           res.SiteURL,
		Products:          res.Products,
		Variations:        res.Variations,
		Skipped:           res.Skipped,
		DroppedVariations: res.DroppedVariations,
		StartedAt:         res.StartedAt,
		FinishedAt:        res.FinishedAt,
	}
}

func ToUseCase(model *ImportResultRedisModel) *usecase.ImportCatalogRes {
	return &usecase.ImportCatalogRes{
		SiteURL:           model.SiteURL,
		Products:          model.Products,
		Variations:        model.Variations,
		Skipped:           model.Skipped,
		DroppedVariations: model.DroppedVariations,
		StartedAt:         model.StartedAt,
		FinishedAt:        model.FinishedAt,
	}
}
