package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/DRSN-tech/products-api/internal/domain"
	"github.com/DRSN-tech/products-api/pkg/e"
	"github.com/DRSN-tech/products-api/pkg/logger"
	"github.com/google/uuid"
)

// defaultTop — размер выдачи поиска, если top не задан или некорректен.
const defaultTop = 10

// ProductUseCase реализует бизнес-логику каталога товаров:
// валидация входа, генерация векторов и обращение к хранилищу.
type ProductUseCase struct {
	productRepo ProductRepository
	embedding   EmbeddingInfra
	logger      logger.Logger
}

func NewProductUC(productRepo ProductRepository, embedding EmbeddingInfra, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		embedding:   embedding,
		logger:      logger,
	}
}

// CreateProduct обрабатывает создание нового товара: валидация, назначение
// идентификатора, генерация векторов для непустых текстовых полей и запись
// в хранилище. Векторы считаются последовательно; сбой любого шага прерывает
// весь запрос до записи — частичных вставок не бывает.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if vErr := validateCreateProduct(req); vErr != nil {
		return nil, vErr
	}

	product := req.ToDomain()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := p.attachVectors(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	stored, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.logger.Infof("product created: %s", stored.ID)

	return stored, nil
}

// GetProducts возвращает все товары каталога без векторных полей.
func (p *ProductUseCase) GetProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.GetProducts"

	products, err := p.productRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProductByID возвращает товар по идентификатору.
// Некорректный uuid отклоняется до обращения к хранилищу.
func (p *ProductUseCase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.GetProductByID"

	if err := validateProductID(id); err != nil {
		return nil, err
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// SearchByDescription ищет товары по смыслу свободной строки запроса.
func (p *ProductUseCase) SearchByDescription(ctx context.Context, req *SearchByDescriptionReq) ([]domain.SearchHit, error) {
	if vErr := validateSearchQuery("queryDescription", req.QueryDescription); vErr != nil {
		return nil, vErr
	}

	return p.search(ctx, domain.FieldDescription, *req.QueryDescription, req.Top)
}

// SearchByTags ищет товары по набору тегов.
// Теги склеиваются в один текст через пробел перед векторизацией.
func (p *ProductUseCase) SearchByTags(ctx context.Context, req *SearchByTagsReq) ([]domain.SearchHit, error) {
	if vErr := validateSearchTerms("queryTags", req.QueryTags); vErr != nil {
		return nil, vErr
	}

	return p.search(ctx, domain.FieldTags, strings.Join(req.QueryTags, " "), req.Top)
}

// SearchByFeatures ищет товары по набору характеристик.
func (p *ProductUseCase) SearchByFeatures(ctx context.Context, req *SearchByFeaturesReq) ([]domain.SearchHit, error) {
	if vErr := validateSearchTerms("queryFeatures", req.QueryFeatures); vErr != nil {
		return nil, vErr
	}

	return p.search(ctx, domain.FieldFeatures, strings.Join(req.QueryFeatures, " "), req.Top)
}

// search векторизует текст запроса и делегирует ранжирование хранилищу.
func (p *ProductUseCase) search(ctx context.Context, field domain.VectorField, text string, top *float64) ([]domain.SearchHit, error) {
	const op = "ProductUseCase.search"

	vector, err := p.embedding.Vectorize(ctx, text)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(vector) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyVector)
	}

	hits, err := p.productRepo.SearchByVector(ctx, field, vector, normalizeTop(top))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return hits, nil
}

// attachVectors последовательно генерирует векторы для непустых текстовых
// полей товара. Переданные клиентом векторы перезаписываются: источником
// истины считается текст.
func (p *ProductUseCase) attachVectors(ctx context.Context, product *domain.Product) error {
	sources := map[domain.VectorField]string{
		domain.FieldDescription: product.Description,
		domain.FieldTags:        strings.Join(product.Tags, " "),
		domain.FieldFeatures:    product.Features,
	}

	for _, field := range domain.VectorFields {
		text := sources[field]
		if strings.TrimSpace(text) == "" {
			continue
		}

		vector, err := p.embedding.Vectorize(ctx, text)
		if err != nil {
			return e.Wrap(string(field), err)
		}

		if len(vector) == 0 {
			return e.Wrap(string(field), e.ErrEmptyVector)
		}

		product.SetVector(field, vector)
	}

	return nil
}

// normalizeTop приводит top к положительному целому.
// Отсутствующее, нецелое, нулевое или отрицательное значение
// заменяется значением по умолчанию.
func normalizeTop(top *float64) uint64 {
	if top == nil {
		return defaultTop
	}

	if *top <= 0 || math.Trunc(*top) != *top {
		return defaultTop
	}

	return uint64(*top)
}
