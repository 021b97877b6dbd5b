package usecase

import (
	"math"
	"net/url"
	"strings"

	"github.com/DRSN-tech/products-api/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	msgRequired      = "is required"
	msgNotBlank      = "must be a non-empty string"
	msgNotNegative   = "must be a non-negative number"
	msgInteger       = "must be a non-negative integer"
	msgInvalidUUID   = "must be a valid uuid"
	msgInvalidURL    = "must be a well-formed url"
	msgPriceDecimals = "must have at most 2 decimal places"
	msgNoTerms       = "must contain at least one non-blank string"
)

// validateCreateProduct проверяет тело запроса на создание товара.
// Валидация не останавливается на первом нарушении: в результат попадает
// каждое проблемное поле с путём через точку. nil означает успех.
func validateCreateProduct(req *CreateProductReq) *e.ValidationError {
	var fields []e.FieldError

	addError := func(field, message string) {
		fields = append(fields, e.FieldError{Field: field, Message: message})
	}

	requireString := func(field string, value *string) {
		if value == nil {
			addError(field, msgRequired)
			return
		}
		if strings.TrimSpace(*value) == "" {
			addError(field, msgNotBlank)
		}
	}

	requireString("name", req.Name)
	requireString("brand", req.Brand)
	requireString("sku", req.SKU)
	requireString("category", req.Category)
	requireString("currency", req.Currency)
	requireString("description", req.Description)
	requireString("features", req.Features)
	requireString("manufacturer", req.Manufacturer)
	requireString("model", req.Model)
	requireString("releaseDate", req.ReleaseDate)
	requireString("warranty", req.Warranty)
	requireString("color", req.Color)
	requireString("material", req.Material)
	requireString("origin", req.Origin)

	validatePrice(req.Price, addError)

	if req.Stock == nil {
		addError("stock", msgRequired)
	} else if *req.Stock < 0 || math.Trunc(*req.Stock) != *req.Stock {
		addError("stock", msgInteger)
	}

	if req.Rating == nil {
		addError("rating", msgRequired)
	} else if *req.Rating < 0 {
		addError("rating", msgNotNegative)
	}

	if req.ReviewsCount == nil {
		addError("reviewsCount", msgRequired)
	} else if *req.ReviewsCount < 0 || math.Trunc(*req.ReviewsCount) != *req.ReviewsCount {
		addError("reviewsCount", msgInteger)
	}

	// Пустой массив тегов допустим, отсутствие поля — нет.
	if req.Tags == nil {
		addError("tags", msgRequired)
	}

	if req.ImageURL == nil {
		addError("imageUrl", msgRequired)
	} else if !isValidURL(*req.ImageURL) {
		addError("imageUrl", msgInvalidURL)
	}

	if req.ID != nil {
		if _, err := uuid.Parse(*req.ID); err != nil {
			addError("id", msgInvalidUUID)
		}
	}

	if req.Dimensions != nil {
		requireString("dimensions.weight", req.Dimensions.Weight)
		requireString("dimensions.width", req.Dimensions.Width)
		requireString("dimensions.height", req.Dimensions.Height)
		requireString("dimensions.depth", req.Dimensions.Depth)
	}

	if len(fields) == 0 {
		return nil
	}

	return e.NewValidationError(fields)
}

// validatePrice применяет правило цены: неотрицательная, не более двух знаков
// после запятой. Проверка точности — через decimal, а не float-арифметику.
func validatePrice(price *float64, addError func(field, message string)) {
	if price == nil {
		addError("price", msgRequired)
		return
	}

	d := decimal.NewFromFloat(*price)
	if d.LessThan(decimal.Zero) {
		addError("price", msgNotNegative)
		return
	}

	if d.Exponent() < -2 {
		addError("price", msgPriceDecimals)
	}
}

// validateProductID проверяет только форму идентификатора (uuid).
// Используется путём чтения по id до какого-либо обращения к хранилищу.
func validateProductID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return e.ErrInvalidProductID
	}

	return nil
}

// validateSearchQuery проверяет свободную строку запроса поиска по описанию.
func validateSearchQuery(field string, query *string) *e.ValidationError {
	if query == nil {
		return e.NewValidationError([]e.FieldError{{Field: field, Message: msgRequired}})
	}

	if strings.TrimSpace(*query) == "" {
		return e.NewValidationError([]e.FieldError{{Field: field, Message: msgNotBlank}})
	}

	return nil
}

// validateSearchTerms проверяет массив строк запроса поиска по тегам
// или характеристикам.
func validateSearchTerms(field string, terms []string) *e.ValidationError {
	if terms == nil {
		return e.NewValidationError([]e.FieldError{{Field: field, Message: msgRequired}})
	}

	for _, term := range terms {
		if strings.TrimSpace(term) != "" {
			return nil
		}
	}

	return e.NewValidationError([]e.FieldError{{Field: field, Message: msgNoTerms}})
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
