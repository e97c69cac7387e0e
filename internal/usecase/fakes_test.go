package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/stretchr/testify/mock"
)

var errStoreDown = errors.New("store is down")

// memTaxonomyRepo — таксономии в памяти.
type memTaxonomyRepo struct {
	mu      sync.Mutex
	nextID  int64
	terms   []domain.Category
	failOn  map[string]error // имя узла -> ошибка Create
	creates int
}

func newMemTaxonomyRepo() *memTaxonomyRepo {
	return &memTaxonomyRepo{failOn: make(map[string]error)}
}

func (r *memTaxonomyRepo) Find(_ context.Context, taxonomy, name string, parentID int64) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, term := range r.terms {
		if term.Taxonomy == taxonomy && term.Name == name && term.ParentID == parentID {
			found := term
			return &found, nil
		}
	}

	return nil, e.ErrTermNotFound
}

func (r *memTaxonomyRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failOn[category.Name]; err != nil {
		return nil, err
	}

	r.nextID++
	r.creates++
	created := *category
	created.ID = r.nextID
	r.terms = append(r.terms, created)

	return &created, nil
}

func (r *memTaxonomyRepo) byName(taxonomy, name string) []domain.Category {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []domain.Category
	for _, term := range r.terms {
		if term.Taxonomy == taxonomy && term.Name == name {
			res = append(res, term)
		}
	}

	return res
}

// memProductRepo — товары в памяти с upsert по SKU.
type memProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]domain.Product
	order    []int64
	bySKU    map[string]int64
	meta     map[int64]map[string]string
	terms    map[int64]map[string][]int64
	failSKU  string
	failMeta bool
	saves    int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{
		products: make(map[int64]domain.Product),
		bySKU:    make(map[string]int64),
		meta:     make(map[int64]map[string]string),
		terms:    make(map[int64]map[string][]int64),
	}
}

func (r *memProductRepo) Save(_ context.Context, product *domain.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failSKU != "" && product.SKU == r.failSKU {
		return 0, errStoreDown
	}
	r.saves++

	id := product.ID
	if id == 0 && product.SKU != "" {
		id = r.bySKU[product.SKU]
	}
	if id == 0 {
		r.nextID++
		id = r.nextID
		r.order = append(r.order, id)
	}

	saved := *product
	saved.ID = id
	r.products[id] = saved
	if product.SKU != "" {
		r.bySKU[product.SKU] = id
	}

	return id, nil
}

func (r *memProductRepo) SetMeta(_ context.Context, productID int64, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failMeta {
		return errStoreDown
	}
	if r.meta[productID] == nil {
		r.meta[productID] = make(map[string]string)
	}
	r.meta[productID][key] = value

	return nil
}

func (r *memProductRepo) SetTerms(_ context.Context, productID int64, taxonomy string, termIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.terms[productID] == nil {
		r.terms[productID] = make(map[string][]int64)
	}
	r.terms[productID][taxonomy] = termIDs

	return nil
}

func (r *memProductRepo) bySKUValue(sku string) (domain.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.bySKU[sku]
	if !ok {
		return domain.Product{}, false
	}

	return r.products[id], true
}

func (r *memProductRepo) list(filter func(p domain.Product) bool) []domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []domain.Product
	for _, id := range r.order {
		if p := r.products[id]; filter(p) {
			res = append(res, p)
		}
	}

	return res
}

// memRunRegistry — реестр запусков в памяти.
type memRunRegistry struct {
	mu         sync.Mutex
	token      string
	acquireErr error
	last       *ImportCatalogRes
	released   int
}

func (r *memRunRegistry) Acquire(_ context.Context, _ time.Duration) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.acquireErr != nil {
		return "", r.acquireErr
	}
	if r.token != "" {
		return "", e.ErrImportInProgress
	}
	r.token = "token"

	return r.token, nil
}

func (r *memRunRegistry) Release(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.token == token {
		r.token = ""
		r.released++
	}

	return nil
}

func (r *memRunRegistry) SaveResult(_ context.Context, res *ImportCatalogRes) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = res
	return nil
}

func (r *memRunRegistry) LastResult(_ context.Context) (*ImportCatalogRes, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == nil {
		return nil, e.ErrNoImportRuns
	}
	return r.last, nil
}

// recordingPublisher запоминает опубликованные события.
type recordingPublisher struct {
	mu        sync.Mutex
	products  []ProductImportedEvent
	completed []ImportCatalogRes
	err       error
}

func (p *recordingPublisher) PublishProductImported(_ context.Context, ev *ProductImportedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.products = append(p.products, *ev)
	return p.err
}

func (p *recordingPublisher) PublishImportCompleted(_ context.Context, res *ImportCatalogRes) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed = append(p.completed, *res)
	return p.err
}

type mockMediaStore struct {
	mock.Mock
}

func (m *mockMediaStore) Download(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}

func (m *mockMediaStore) Register(ctx context.Context, localPath, fileName, title string) (int64, error) {
	args := m.Called(ctx, localPath, fileName, title)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMediaStore) DeleteLocal(localPath string) error {
	args := m.Called(localPath)
	return args.Error(0)
}

// memSettingsRepo хранит настройки в JSON, как и настоящее хранилище.
type memSettingsRepo struct {
	mu     sync.Mutex
	values map[string][]byte
	getErr error
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{values: make(map[string][]byte)}
}

func (r *memSettingsRepo) Get(_ context.Context, name string, dst any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return false, r.getErr
	}

	data, ok := r.values[name]
	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(data, dst)
}

func (r *memSettingsRepo) Set(_ context.Context, name string, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[name] = data

	return nil
}

func (r *memSettingsRepo) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, name)
	return nil
}

func (r *memSettingsRepo) raw(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return string(r.values[name])
}

type passThroughTx struct {
	calls int
}

func (t *passThroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type memShippingRepo struct {
	mu      sync.Mutex
	nextID  int64
	methods []domain.ShippingMethod
}

func (r *memShippingRepo) ListZoneMethods(_ context.Context, zoneID int64) ([]domain.ShippingMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []domain.ShippingMethod
	for _, m := range r.methods {
		if m.ZoneID == zoneID {
			res = append(res, m)
		}
	}

	return res, nil
}

func (r *memShippingRepo) AddZoneMethod(_ context.Context, zoneID int64, methodID string) (*domain.ShippingMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m := domain.ShippingMethod{
		InstanceID: r.nextID,
		ZoneID:     zoneID,
		MethodID:   methodID,
		Order:      len(r.methods) + 1,
		Enabled:    true,
	}
	r.methods = append(r.methods, m)

	return &m, nil
}
