package usecase

import "github.com/DRSN-tech/products-api/internal/domain"

// PRODUCT USECASE

// CreateProductReq — тело запроса на создание товара.
// Поля объявлены указателями, чтобы отличать отсутствующее поле
// от нулевого значения при валидации.
type CreateProductReq struct {
	ID           *string        `json:"id"`
	Name         *string        `json:"name"`
	Brand        *string        `json:"brand"`
	SKU          *string        `json:"sku"`
	Category     *string        `json:"category"`
	Price        *float64       `json:"price"`
	Currency     *string        `json:"currency"`
	Stock        *float64       `json:"stock"`
	Description  *string        `json:"description"`
	Features     *string        `json:"features"`
	Rating       *float64       `json:"rating"`
	ReviewsCount *float64       `json:"reviewsCount"`
	Tags         []string       `json:"tags"`
	ImageURL     *string        `json:"imageUrl"`
	Manufacturer *string        `json:"manufacturer"`
	Model        *string        `json:"model"`
	ReleaseDate  *string        `json:"releaseDate"`
	Warranty     *string        `json:"warranty"`
	Dimensions   *DimensionsReq `json:"dimensions"`
	Color        *string        `json:"color"`
	Material     *string        `json:"material"`
	Origin       *string        `json:"origin"`

	DescriptionVector []float32 `json:"descriptionVector"`
	TagsVector        []float32 `json:"tagsVector"`
	FeaturesVector    []float32 `json:"featuresVector"`
}

// DimensionsReq — габариты товара в теле запроса.
type DimensionsReq struct {
	Weight *string `json:"weight"`
	Width  *string `json:"width"`
	Height *string `json:"height"`
	Depth  *string `json:"depth"`
}

// SearchByDescriptionReq — поиск по смыслу описания.
// Вход — свободная строка, в отличие от поиска по тегам и характеристикам.
type SearchByDescriptionReq struct {
	QueryDescription *string  `json:"queryDescription"`
	Top              *float64 `json:"top"`
}

// SearchByTagsReq — поиск по набору тегов.
type SearchByTagsReq struct {
	QueryTags []string `json:"queryTags"`
	Top       *float64 `json:"top"`
}

// SearchByFeaturesReq — поиск по набору характеристик.
type SearchByFeaturesReq struct {
	QueryFeatures []string `json:"queryFeatures"`
	Top           *float64 `json:"top"`
}

// MAPPERS

// ToDomain собирает доменный товар из провалидированного запроса.
// Вызывается только после успешной валидации: обязательные указатели не nil.
func (r *CreateProductReq) ToDomain() *domain.Product {
	product := &domain.Product{
		Name:         *r.Name,
		Brand:        *r.Brand,
		SKU:          *r.SKU,
		Category:     *r.Category,
		Price:        *r.Price,
		Currency:     *r.Currency,
		Stock:        int(*r.Stock),
		Description:  *r.Description,
		Features:     *r.Features,
		Rating:       *r.Rating,
		ReviewsCount: int(*r.ReviewsCount),
		Tags:         r.Tags,
		ImageURL:     *r.ImageURL,
		Manufacturer: *r.Manufacturer,
		Model:        *r.Model,
		ReleaseDate:  *r.ReleaseDate,
		Warranty:     *r.Warranty,
		Color:        *r.Color,
		Material:     *r.Material,
		Origin:       *r.Origin,

		DescriptionVector: r.DescriptionVector,
		TagsVector:        r.TagsVector,
		FeaturesVector:    r.FeaturesVector,
	}

	if r.ID != nil {
		product.ID = *r.ID
	}

	if r.Dimensions != nil {
		product.Dimensions = &domain.Dimensions{
			Weight: *r.Dimensions.Weight,
			Width:  *r.Dimensions.Width,
			Height: *r.Dimensions.Height,
			Depth:  *r.Dimensions.Depth,
		}
	}

	return product
}

func NewSearchByDescriptionReq(query *string, top *float64) *SearchByDescriptionReq {
	return &SearchByDescriptionReq{
		QueryDescription: query,
		Top:              top,
	}
}

func NewSearchByTagsReq(tags []string, top *float64) *SearchByTagsReq {
	return &SearchByTagsReq{
		QueryTags: tags,
		Top:       top,
	}
}

func NewSearchByFeaturesReq(features []string, top *float64) *SearchByFeaturesReq {
	return &SearchByFeaturesReq{
		QueryFeatures: features,
		Top:           top,
	}
}
