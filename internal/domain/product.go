package domain

// Dimensions описывает габариты товара. Значения хранятся строками,
// как их присылает клиент ("1.5 kg", "20 cm").
type Dimensions struct {
	Weight string `json:"weight"`
	Width  string `json:"width"`
	Height string `json:"height"`
	Depth  string `json:"depth"`
}

// Product описывает товар каталога — единственную сущность системы.
// ID уникален в пределах коллекции и неизменяем после назначения.
// Векторные поля заполняются только после вызова embedding-сервиса
// и только для непустых исходных текстов.
type Product struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Brand        string     `json:"brand"`
	SKU          string     `json:"sku"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	Currency     string     `json:"currency"`
	Stock        int        `json:"stock"`
	Description  string     `json:"description"`
	Features     string     `json:"features"`
	Rating       float64    `json:"rating"`
	ReviewsCount int        `json:"reviewsCount"`
	Tags         []string   `json:"tags"`
	ImageURL     string     `json:"imageUrl"`
	Manufacturer string     `json:"manufacturer"`
	Model        string     `json:"model"`
	ReleaseDate  string     `json:"releaseDate"`
	Warranty     string     `json:"warranty"`
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
	Color        string     `json:"color"`
	Material     string     `json:"material"`
	Origin       string     `json:"origin"`

	DescriptionVector []float32 `json:"descriptionVector,omitempty"`
	TagsVector        []float32 `json:"tagsVector,omitempty"`
	FeaturesVector    []float32 `json:"featuresVector,omitempty"`
}

// Vector возвращает вектор товара для заданного поля.
func (p *Product) Vector(field VectorField) []float32 {
	switch field {
	case FieldDescription:
		return p.DescriptionVector
	case FieldTags:
		return p.TagsVector
	case FieldFeatures:
		return p.FeaturesVector
	}
	return nil
}

// SetVector записывает вектор товара в заданное поле.
func (p *Product) SetVector(field VectorField, vector []float32) {
	switch field {
	case FieldDescription:
		p.DescriptionVector = vector
	case FieldTags:
		p.TagsVector = vector
	case FieldFeatures:
		p.FeaturesVector = vector
	}
}
