package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/catalog"
	"github.com/DRSN-tech/storefront-seeder/internal/cfg"
	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
)

// CatalogUseCase импортирует демонстрационный каталог: товары, категории, метки, изображения и вариации.
type CatalogUseCase struct {
	productRepo ProductRepository
	resolver    *CategoryResolver
	fetcher     *AssetFetcher
	runRegistry RunRegistry
	publisher   EventPublisher
	importCfg   *cfg.ImportCfg
	storeCfg    *cfg.StoreCfg
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	resolver *CategoryResolver,
	fetcher *AssetFetcher,
	runRegistry RunRegistry,
	publisher EventPublisher,
	importCfg *cfg.ImportCfg,
	storeCfg *cfg.StoreCfg,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		resolver:    resolver,
		fetcher:     fetcher,
		runRegistry: runRegistry,
		publisher:   publisher,
		importCfg:   importCfg,
		storeCfg:    storeCfg,
		logger:      logger,
	}
}

// ImportCatalog выполняет импорт целиком. Одновременно может идти только один импорт.
// Ошибка сохранения любой сущности прерывает весь импорт.
func (c *CatalogUseCase) ImportCatalog(ctx context.Context, req *ImportCatalogReq) (*ImportCatalogRes, error) {
	const op = "CatalogUseCase.ImportCatalog"

	token, err := c.runRegistry.Acquire(ctx, c.importCfg.RunLockTTL)
	switch {
	case errors.Is(err, e.ErrImportInProgress):
		return nil, e.Wrap(op, err)
	case err != nil:
		// Реестр недоступен: импорт идёт без блокировки
		c.logger.Warnf("run registry unavailable, importing without lock: %v", e.Wrap(op, err))
	default:
		defer func() {
			if err := c.runRegistry.Release(context.WithoutCancel(ctx), token); err != nil {
				c.logger.Warnf("failed to release import lock: %v", e.Wrap(op, err))
			}
		}()
	}

	res, err := c.importCatalog(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.runRegistry.SaveResult(ctx, res); err != nil {
		c.logger.Warnf("failed to save import result: %v", e.Wrap(op, err))
	}

	if err := c.publisher.PublishImportCompleted(ctx, res); err != nil {
		c.logger.Warnf("failed to publish import completed event: %v", e.Wrap(op, err))
	}

	c.logger.Infof("catalog imported: products=%d, variations=%d, skipped=%d, dropped_variations=%d",
		res.Products, res.Variations, res.Skipped, res.DroppedVariations)

	return res, nil
}

// LastImport возвращает итог последнего завершённого импорта.
func (c *CatalogUseCase) LastImport(ctx context.Context) (*ImportCatalogRes, error) {
	const op = "CatalogUseCase.LastImport"

	res, err := c.runRegistry.LastResult(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

func (c *CatalogUseCase) importCatalog(ctx context.Context, req *ImportCatalogReq) (*ImportCatalogRes, error) {
	res := &ImportCatalogRes{
		SiteURL:   c.siteURL(),
		StartedAt: time.Now().UTC(),
	}

	data, err := c.loadDataset(req)
	if err != nil {
		return nil, err
	}

	records, err := catalog.Parse(data)
	if err != nil {
		return nil, err
	}

	classified := catalog.Classify(records)

	totalVariations := 0
	classified.Variations.Range(func(_ string, group []catalog.Record) bool {
		totalVariations += len(group)
		return true
	})

	for _, sku := range classified.Products.Keys() {
		rec, _ := classified.Products.Get(sku)

		if err := c.importProduct(ctx, rec, classified.VariationsOf(sku), res); err != nil {
			return nil, e.Wrap(fmt.Sprintf("sku %q (line %d)", sku, rec.Line), err)
		}
	}

	res.DroppedVariations = totalVariations - res.Variations
	res.FinishedAt = time.Now().UTC()

	return res, nil
}

// importProduct обрабатывает одну запись товара и его вариации.
func (c *CatalogUseCase) importProduct(ctx context.Context, rec catalog.Record, variations []catalog.Record, res *ImportCatalogRes) error {
	kind := domain.ProductKind(rec.Get(catalog.ColType))

	product, err := domain.NewProduct(kind)
	if err != nil {
		if c.importCfg.StrictKinds {
			return e.Wrap(fmt.Sprintf("kind %q", kind), err)
		}

		c.logger.Debugf("skipping record on line %d: unsupported kind %q", rec.Line, kind)
		res.Skipped++
		return nil
	}

	populateProduct(product, rec)

	if err := c.assignCategory(ctx, product, rec); err != nil {
		return err
	}

	c.attachImage(ctx, product, rec)

	product.ID, err = c.productRepo.Save(ctx, product)
	if err != nil {
		return err
	}

	c.attachTags(ctx, product, rec)

	if err := c.attachMeta(ctx, product.ID, rec); err != nil {
		return err
	}

	if product.Kind == domain.KindVariable {
		if attr, ok := attributeFromRecord(rec); ok {
			product.Attributes = []domain.Attribute{*attr}

			if _, err := c.productRepo.Save(ctx, product); err != nil {
				return err
			}
		}
	}

	imported := 0
	if product.Kind == domain.KindVariable {
		attrKey := catalog.SanitizeKey(rec.Get(catalog.ColAttributeName))

		for _, vrec := range variations {
			if err := c.importVariation(ctx, product, attrKey, vrec); err != nil {
				return e.Wrap(fmt.Sprintf("variation %q (line %d)", vrec.Get(catalog.ColSKU), vrec.Line), err)
			}
			imported++
		}
	}

	res.Products++
	res.Variations += imported

	if err := c.publisher.PublishProductImported(ctx, NewProductImportedEvent(product, imported)); err != nil {
		c.logger.Warnf("failed to publish product imported event, sku=%s: %v", product.SKU, err)
	}

	return nil
}

// importVariation сохраняет вариацию, принадлежащую parent.
func (c *CatalogUseCase) importVariation(ctx context.Context, parent *domain.Product, attrKey string, rec catalog.Record) error {
	variation, err := domain.NewVariation(parent.ID)
	if err != nil {
		return err
	}

	populateVariation(variation, rec)
	if attrKey != "" {
		variation.VariationAttributes[attrKey] = rec.Text(catalog.ColAttributeValues)
	}

	c.attachImage(ctx, variation, rec)

	variation.ID, err = c.productRepo.Save(ctx, variation)
	if err != nil {
		return err
	}

	return c.attachMeta(ctx, variation.ID, rec)
}

// assignCategory привязывает товар только к последнему (листовому) узлу пути категорий.
func (c *CatalogUseCase) assignCategory(ctx context.Context, product *domain.Product, rec catalog.Record) error {
	path := rec.Get(catalog.ColCategories)
	if strings.TrimSpace(path) == "" {
		return nil
	}

	ids, err := c.resolver.Resolve(ctx, path)
	if err != nil {
		if c.importCfg.StrictCategories {
			return err
		}
		c.logger.Warnf("category resolution failed on line %d, resolved %d of path %q: %v", rec.Line, len(ids), path, err)
	}

	if len(ids) > 0 {
		product.CategoryIDs = []int64{ids[len(ids)-1]}
	}

	return nil
}

// attachTags связывает сохранённый товар с метками. Ошибки только логируются.
func (c *CatalogUseCase) attachTags(ctx context.Context, product *domain.Product, rec catalog.Record) {
	names := rec.List(catalog.ColTags)
	if len(names) == 0 {
		return
	}

	ids, err := c.resolver.ResolveTags(ctx, names)
	if err != nil {
		c.logger.Warnf("tag resolution failed on line %d: %v", rec.Line, err)
	}
	if len(ids) == 0 {
		return
	}

	if err := c.productRepo.SetTerms(ctx, product.ID, domain.TaxonomyTag, ids); err != nil {
		c.logger.Warnf("failed to attach tags to product %d: %v", product.ID, err)
	}
}

func (c *CatalogUseCase) attachImage(ctx context.Context, product *domain.Product, rec catalog.Record) {
	raw := strings.TrimSpace(rec.Get(catalog.ColImages))
	if raw == "" {
		return
	}

	imageURL, ok := rec.URL(catalog.ColImages)
	if !ok {
		c.logger.Warnf("invalid image url on line %d: %q", rec.Line, raw)
		return
	}

	if assetID, ok := c.fetcher.Fetch(ctx, imageURL, product.Name); ok {
		product.ImageID = assetID
	}
}

// attachMeta записывает непустые колонки "Meta: *" как мета-поля сущности.
func (c *CatalogUseCase) attachMeta(ctx context.Context, productID int64, rec catalog.Record) error {
	for _, field := range rec.Meta() {
		if field.Key == "" {
			continue
		}

		if err := c.productRepo.SetMeta(ctx, productID, field.Key, field.Value); err != nil {
			return e.Wrap(fmt.Sprintf("meta %q", field.Key), err)
		}
	}

	return nil
}

func (c *CatalogUseCase) loadDataset(req *ImportCatalogReq) (string, error) {
	if req != nil && req.Dataset != "" {
		return req.Dataset, nil
	}

	return catalog.LoadDataset(c.importCfg.DatasetPath)
}

// siteURL возвращает корень витрины с завершающим слэшем.
func (c *CatalogUseCase) siteURL() string {
	return strings.TrimRight(c.storeCfg.SiteURL, "/") + "/"
}

// populateProduct заполняет описательные, ценовые, складские и габаритные поля товара.
func populateProduct(p *domain.Product, rec catalog.Record) {
	p.SKU = rec.Text(catalog.ColSKU)
	p.Name = rec.Text(catalog.ColName)
	p.SetPublished(rec.Flag(catalog.ColPublished))
	p.Featured = rec.Flag(catalog.ColFeatured)
	if visibility := rec.Text(catalog.ColVisibility); visibility != "" {
		p.CatalogVisibility = visibility
	}
	p.ShortDescription = catalog.SanitizeHTML(rec.Get(catalog.ColShortDescription))
	p.Description = catalog.SanitizeHTML(rec.Get(catalog.ColDescription))
	p.RegularPrice = rec.Decimal(catalog.ColRegularPrice)
	p.SalePrice = rec.Decimal(catalog.ColSalePrice)
	p.TaxStatus = rec.Text(catalog.ColTaxStatus)
	p.TaxClass = rec.Text(catalog.ColTaxClass)
	p.ManageStock = rec.Flag(catalog.ColInStock)
	p.StockQuantity = rec.StockQuantity(catalog.ColStock)
	p.SetBackordersAllowed(rec.Flag(catalog.ColBackorders))
	p.SoldIndividually = rec.Flag(catalog.ColSoldIndividually)
	p.Weight = rec.Decimal(catalog.ColWeight)
	p.Length = rec.Decimal(catalog.ColLength)
	p.Width = rec.Decimal(catalog.ColWidth)
	p.Height = rec.Decimal(catalog.ColHeight)
	p.ReviewsAllowed = rec.Flag(catalog.ColReviewsAllowed)
	p.PurchaseNote = catalog.SanitizeHTML(rec.Get(catalog.ColPurchaseNote))
}

// populateVariation заполняет поля вариации: у вариации нет описаний, налогов и отзывов.
func populateVariation(v *domain.Product, rec catalog.Record) {
	v.SKU = rec.Text(catalog.ColSKU)
	v.Name = rec.Text(catalog.ColName)
	v.SetPublished(rec.Flag(catalog.ColPublished))
	v.RegularPrice = rec.Decimal(catalog.ColRegularPrice)
	v.SalePrice = rec.Decimal(catalog.ColSalePrice)
	v.ManageStock = rec.Flag(catalog.ColInStock)
	v.StockQuantity = rec.StockQuantity(catalog.ColStock)
	v.Weight = rec.Decimal(catalog.ColWeight)
	v.Length = rec.Decimal(catalog.ColLength)
	v.Width = rec.Decimal(catalog.ColWidth)
	v.Height = rec.Decimal(catalog.ColHeight)
}

// attributeFromRecord строит первый атрибут вариативного товара, если задано его имя.
func attributeFromRecord(rec catalog.Record) (*domain.Attribute, bool) {
	name := rec.Text(catalog.ColAttributeName)
	if name == "" {
		return nil, false
	}

	return domain.NewAttribute(
		name,
		rec.List(catalog.ColAttributeValues),
		rec.Flag(catalog.ColAttributeVisible),
		rec.Flag(catalog.ColAttributeGlobal),
	), true
}
