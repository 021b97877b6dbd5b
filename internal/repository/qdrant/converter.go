package qdrant

import (
	"github.com/DRSN-tech/products-api/internal/domain"
	"github.com/qdrant/go-client/qdrant"
)

// Конвертация товара между доменной моделью и точкой Qdrant.
// Все невекторные поля хранятся в payload под своими wire-именами,
// векторы — как именованные векторы точки, а не payload: так выборки
// без векторов (список, поиск) не тянут большие массивы по сети.

// toPayload собирает payload точки из невекторных полей товара.
// ID в payload не дублируется — он является идентификатором точки.
func toPayload(product *domain.Product) map[string]any {
	payload := map[string]any{
		"name":         product.Name,
		"brand":        product.Brand,
		"sku":          product.SKU,
		"category":     product.Category,
		"price":        product.Price,
		"currency":     product.Currency,
		"stock":        product.Stock,
		"description":  product.Description,
		"features":     product.Features,
		"rating":       product.Rating,
		"reviewsCount": product.ReviewsCount,
		"tags":         toAnySlice(product.Tags),
		"imageUrl":     product.ImageURL,
		"manufacturer": product.Manufacturer,
		"model":        product.Model,
		"releaseDate":  product.ReleaseDate,
		"warranty":     product.Warranty,
		"color":        product.Color,
		"material":     product.Material,
		"origin":       product.Origin,
	}

	if product.Dimensions != nil {
		payload["dimensions"] = map[string]any{
			"weight": product.Dimensions.Weight,
			"width":  product.Dimensions.Width,
			"height": product.Dimensions.Height,
			"depth":  product.Dimensions.Depth,
		}
	}

	return payload
}

// toVectors собирает карту именованных векторов точки.
// Отсутствующие векторы не включаются: каждый генерируется независимо.
func toVectors(product *domain.Product) map[string][]float32 {
	vectors := make(map[string][]float32, len(domain.VectorFields))
	for _, field := range domain.VectorFields {
		if v := product.Vector(field); len(v) > 0 {
			vectors[string(field)] = v
		}
	}

	return vectors
}

// toEntity восстанавливает товар из идентификатора точки и её payload.
func toEntity(id string, payload map[string]*qdrant.Value) *domain.Product {
	product := &domain.Product{
		ID:           id,
		Name:         payloadString(payload, "name"),
		Brand:        payloadString(payload, "brand"),
		SKU:          payloadString(payload, "sku"),
		Category:     payloadString(payload, "category"),
		Price:        payloadFloat(payload, "price"),
		Currency:     payloadString(payload, "currency"),
		Stock:        payloadInt(payload, "stock"),
		Description:  payloadString(payload, "description"),
		Features:     payloadString(payload, "features"),
		Rating:       payloadFloat(payload, "rating"),
		ReviewsCount: payloadInt(payload, "reviewsCount"),
		Tags:         payloadStrings(payload, "tags"),
		ImageURL:     payloadString(payload, "imageUrl"),
		Manufacturer: payloadString(payload, "manufacturer"),
		Model:        payloadString(payload, "model"),
		ReleaseDate:  payloadString(payload, "releaseDate"),
		Warranty:     payloadString(payload, "warranty"),
		Color:        payloadString(payload, "color"),
		Material:     payloadString(payload, "material"),
		Origin:       payloadString(payload, "origin"),
	}

	if dims := payload["dimensions"].GetStructValue(); dims != nil {
		product.Dimensions = &domain.Dimensions{
			Weight: payloadString(dims.Fields, "weight"),
			Width:  payloadString(dims.Fields, "width"),
			Height: payloadString(dims.Fields, "height"),
			Depth:  payloadString(dims.Fields, "depth"),
		}
	}

	return product
}

// attachPointVectors переносит именованные векторы точки в товар.
func attachPointVectors(product *domain.Product, vectors *qdrant.VectorsOutput) {
	named := vectors.GetVectors()
	if named == nil {
		return
	}

	for _, field := range domain.VectorFields {
		if v, ok := named.Vectors[string(field)]; ok {
			product.SetVector(field, v.GetData())
		}
	}
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	return payload[key].GetStringValue()
}

// payloadFloat возвращает числовое значение поля.
// Qdrant хранит целые и дробные числа разными типами, поэтому
// учитываются оба представления.
func payloadFloat(payload map[string]*qdrant.Value, key string) float64 {
	value, ok := payload[key]
	if !ok {
		return 0
	}

	if _, isInt := value.GetKind().(*qdrant.Value_IntegerValue); isInt {
		return float64(value.GetIntegerValue())
	}

	return value.GetDoubleValue()
}

func payloadInt(payload map[string]*qdrant.Value, key string) int {
	return int(payloadFloat(payload, key))
}

func payloadStrings(payload map[string]*qdrant.Value, key string) []string {
	list := payload[key].GetListValue()
	if list == nil {
		return nil
	}

	result := make([]string, 0, len(list.Values))
	for _, v := range list.Values {
		result = append(result, v.GetStringValue())
	}

	return result
}

func toAnySlice(values []string) []any {
	result := make([]any, 0, len(values))
	for _, v := range values {
		result = append(result, v)
	}

	return result
}
