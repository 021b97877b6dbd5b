package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/products-api/internal/usecase"
	"github.com/DRSN-tech/products-api/pkg/e"
	"github.com/DRSN-tech/products-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// maxBodySize ограничивает размер тела запроса (товар с тремя векторами).
const maxBodySize = 4 << 20

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создает товар, генерирует векторы для непустых текстовых полей и сохраняет документ в хранилище
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		usecase.CreateProductReq	true	"Товар"
//	@Success		201		{object}	SuccessResponse				"Созданный товар с векторами"
//	@Failure		400		{object}	ErrorResponse				"Список нарушений валидации"
//	@Failure		409		{object}	ErrorResponse				"Идентификатор уже занят"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateProductReq
	if !p.decodeBody(w, r, &req) {
		return
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), &req)
	if err != nil {
		p.logger.Warnf("create product failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, product)
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает все товары каталога без векторных полей
//	@Tags			products
//	@Produce		json
//	@Success		200	{object}	SuccessResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.GetProducts(r.Context())
	if err != nil {
		p.logger.Warnf("list products failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

// getProductByID
//
//	@Summary		Товар по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"UUID товара"
//	@Success		200	{object}	SuccessResponse
//	@Failure		400	{object}	ErrorResponse	"Некорректный uuid"
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := p.productUsecase.GetProductByID(r.Context(), id)
	if err != nil {
		p.logger.Warnf("get product %q failed: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// searchByDescription
//
//	@Summary		Поиск по смыслу описания
//	@Description	Принимает свободную строку запроса, векторизует её и возвращает top ближайших товаров (по возрастанию косинусного расстояния)
//	@Tags			search
//	@Accept			json
//	@Produce		json
//	@Param			query	body		usecase.SearchByDescriptionReq	true	"Запрос"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/search/description [post]
func (p *ProductHandler) searchByDescription(w http.ResponseWriter, r *http.Request) {
	var req usecase.SearchByDescriptionReq
	if !p.decodeBody(w, r, &req) {
		return
	}

	hits, err := p.productUsecase.SearchByDescription(r.Context(), &req)
	if err != nil {
		p.logger.Warnf("search by description failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, hits)
}

// searchByTags
//
//	@Summary		Поиск по тегам
//	@Description	Принимает массив тегов, склеивает их через пробел и ищет по тег-вектору
//	@Tags			search
//	@Accept			json
//	@Produce		json
//	@Param			query	body		usecase.SearchByTagsReq	true	"Запрос"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/search/tags [post]
func (p *ProductHandler) searchByTags(w http.ResponseWriter, r *http.Request) {
	var req usecase.SearchByTagsReq
	if !p.decodeBody(w, r, &req) {
		return
	}

	hits, err := p.productUsecase.SearchByTags(r.Context(), &req)
	if err != nil {
		p.logger.Warnf("search by tags failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, hits)
}

// searchByFeatures
//
//	@Summary		Поиск по характеристикам
//	@Tags			search
//	@Accept			json
//	@Produce		json
//	@Param			query	body		usecase.SearchByFeaturesReq	true	"Запрос"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/search/features [post]
func (p *ProductHandler) searchByFeatures(w http.ResponseWriter, r *http.Request) {
	var req usecase.SearchByFeaturesReq
	if !p.decodeBody(w, r, &req) {
		return
	}

	hits, err := p.productUsecase.SearchByFeatures(r.Context(), &req)
	if err != nil {
		p.logger.Warnf("search by features failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, hits)
}

// decodeBody декодирует JSON-тело в dst. Нечитаемое тело или несовпадение
// типов — единая ошибка 400 до какой-либо валидации полей.
func (p *ProductHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrInvalidBody.Error(), err.Error())
		WriteError(w, e.ErrInvalidBody)
		return false
	}

	return true
}
