package domain

// VectorField — имя именованного вектора в коллекции.
// Строковые значения совпадают с ключами векторов в Qdrant и с JSON-полями товара.
type VectorField string

const (
	FieldDescription VectorField = "descriptionVector"
	FieldTags        VectorField = "tagsVector"
	FieldFeatures    VectorField = "featuresVector"
)

// VectorFields — все векторные поля коллекции. Порядок фиксирован:
// в нем создаются индексы и генерируются векторы при создании товара.
var VectorFields = []VectorField{FieldDescription, FieldTags, FieldFeatures}

// SearchHit — результат векторного поиска: товар и его косинусное
// расстояние до запроса (меньше — ближе по смыслу).
type SearchHit struct {
	Product         Product `json:"product"`
	SimilarityScore float32 `json:"similarityScore"`
}

func NewSearchHit(product Product, score float32) SearchHit {
	return SearchHit{
		Product:         product,
		SimilarityScore: score,
	}
}
