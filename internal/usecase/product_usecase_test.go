package usecase

import (
	"context"
	"math"
	"sort"
	"testing"

	"github.com/DRSN-tech/products-api/internal/domain"
	"github.com/DRSN-tech/products-api/pkg/e"
	"github.com/DRSN-tech/products-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder возвращает детерминированные векторы по таблице текстов.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   []string
}

func (f *fakeEmbedder) Vectorize(_ context.Context, text string) ([]float32, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return nil, f.err
	}

	if v, ok := f.vectors[text]; ok {
		return v, nil
	}

	return []float32{0.1, 0.2}, nil
}

// fakeProductRepo — репозиторий в памяти. Поиск ранжирует сохранённые
// товары по косинусному расстоянию, имитируя индекс хранилища.
type fakeProductRepo struct {
	products  []domain.Product
	createErr error
	searchErr error

	lastField domain.VectorField
	lastTop   uint64
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.products = append(f.products, *product)
	return product, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}

	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) SearchByVector(_ context.Context, field domain.VectorField, vector []float32, top uint64) ([]domain.SearchHit, error) {
	f.lastField = field
	f.lastTop = top

	if f.searchErr != nil {
		return nil, f.searchErr
	}

	hits := make([]domain.SearchHit, 0, len(f.products))
	for _, product := range f.products {
		stored := product.Vector(field)
		if stored == nil {
			continue
		}
		hits = append(hits, domain.NewSearchHit(product, cosineDistance(stored, vector)))
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].SimilarityScore < hits[j].SimilarityScore })

	if uint64(len(hits)) > top {
		hits = hits[:top]
	}

	return hits, nil
}

func cosineDistance(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	return float32(1 - dot/(math.Sqrt(normA)*math.Sqrt(normB)))
}

func newTestUC(repo *fakeProductRepo, emb *fakeEmbedder) *ProductUseCase {
	return NewProductUC(repo, emb, logger.NewNopLogger())
}

func TestCreateProduct_AssignsUUIDWhenAbsent(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newTestUC(repo, &fakeEmbedder{})

	stored, err := uc.CreateProduct(context.Background(), validCreateReq())
	require.NoError(t, err)

	_, err = uuid.Parse(stored.ID)
	assert.NoError(t, err, "assigned id must be a well-formed uuid")
}

func TestCreateProduct_KeepsProvidedID(t *testing.T) {
	const id = "3e7a3bbe-6cf0-4e9e-9b35-6a2d9a1c1a01"

	repo := &fakeProductRepo{}
	uc := newTestUC(repo, &fakeEmbedder{})

	req := validCreateReq()
	req.ID = ptr(id)

	stored, err := uc.CreateProduct(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, id, stored.ID)
}

func TestCreateProduct_PreservesFields(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newTestUC(repo, &fakeEmbedder{})

	req := validCreateReq()
	req.Dimensions = &DimensionsReq{
		Weight: ptr("0.1 kg"),
		Width:  ptr("6 cm"),
		Height: ptr("11 cm"),
		Depth:  ptr("6 cm"),
	}

	stored, err := uc.CreateProduct(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, *req.Name, stored.Name)
	assert.Equal(t, *req.Brand, stored.Brand)
	assert.Equal(t, *req.SKU, stored.SKU)
	assert.Equal(t, *req.Price, stored.Price)
	assert.Equal(t, int(*req.Stock), stored.Stock)
	assert.Equal(t, req.Tags, stored.Tags)
	assert.Equal(t, *req.ImageURL, stored.ImageURL)
	require.NotNil(t, stored.Dimensions)
	assert.Equal(t, "0.1 kg", stored.Dimensions.Weight)
	assert.Equal(t, *req.Origin, stored.Origin)
}

func TestCreateProduct_AttachesVectorsForNonEmptySources(t *testing.T) {
	repo := &fakeProductRepo{}
	emb := &fakeEmbedder{}
	uc := newTestUC(repo, emb)

	req := validCreateReq()
	stored, err := uc.CreateProduct(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, stored.DescriptionVector)
	assert.NotEmpty(t, stored.TagsVector)
	assert.NotEmpty(t, stored.FeaturesVector)

	// Векторизуются именно исходные тексты; теги — склейка через пробел.
	require.Len(t, emb.calls, 3)
	assert.Equal(t, *req.Description, emb.calls[0])
	assert.Equal(t, "smart-home lighting", emb.calls[1])
	assert.Equal(t, *req.Features, emb.calls[2])
}

func TestCreateProduct_SkipsTagsVectorWhenTagsEmpty(t *testing.T) {
	repo := &fakeProductRepo{}
	emb := &fakeEmbedder{}
	uc := newTestUC(repo, emb)

	req := validCreateReq()
	req.Tags = []string{}

	stored, err := uc.CreateProduct(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, stored.TagsVector)
	assert.Len(t, emb.calls, 2)
}

func TestCreateProduct_EmbeddingFailureAbortsBeforeWrite(t *testing.T) {
	repo := &fakeProductRepo{}
	emb := &fakeEmbedder{err: e.Wrap("embedding endpoint", assert.AnError)}
	uc := newTestUC(repo, emb)

	_, err := uc.CreateProduct(context.Background(), validCreateReq())
	require.Error(t, err)
	assert.Empty(t, repo.products, "store must not be written after a failed embedding")
}

func TestCreateProduct_ValidationFailureNeverReachesCollaborators(t *testing.T) {
	repo := &fakeProductRepo{}
	emb := &fakeEmbedder{}
	uc := newTestUC(repo, emb)

	_, err := uc.CreateProduct(context.Background(), &CreateProductReq{})

	var vErr *e.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, emb.calls)
	assert.Empty(t, repo.products)
}

func TestGetProductByID_MalformedID(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newTestUC(repo, &fakeEmbedder{})

	_, err := uc.GetProductByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, e.ErrInvalidProductID)
}

func TestGetProductByID_NotFound(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newTestUC(repo, &fakeEmbedder{})

	_, err := uc.GetProductByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestSearch_TopNormalization(t *testing.T) {
	tests := []struct {
		name string
		top  *float64
		want uint64
	}{
		{"absent", nil, 10},
		{"zero", ptr(0.0), 10},
		{"negative", ptr(-5.0), 10},
		{"non-integer", ptr(2.5), 10},
		{"verbatim", ptr(3.0), 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeProductRepo{}
			uc := newTestUC(repo, &fakeEmbedder{})

			_, err := uc.SearchByDescription(context.Background(), NewSearchByDescriptionReq(ptr("smart lighting"), tc.top))
			require.NoError(t, err)
			assert.Equal(t, tc.want, repo.lastTop)
		})
	}
}

func TestSearch_RoutesToMatchingVectorField(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newTestUC(repo, &fakeEmbedder{})

	_, err := uc.SearchByTags(context.Background(), NewSearchByTagsReq([]string{"smart-home", "lighting"}, nil))
	require.NoError(t, err)
	assert.Equal(t, domain.FieldTags, repo.lastField)

	_, err = uc.SearchByFeatures(context.Background(), NewSearchByFeaturesReq([]string{"wifi"}, nil))
	require.NoError(t, err)
	assert.Equal(t, domain.FieldFeatures, repo.lastField)
}

func TestSearchByDescription_RanksBySemanticRelevance(t *testing.T) {
	// Детерминированные векторы: единичные, угол задаёт "смысловую близость".
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"Illuminate your home with smart bulbs": {1, 0},
		"smart lighting":                        {0.8, 0.6},
		"fresh bananas":                         {0, 1},
	}}
	repo := &fakeProductRepo{}
	uc := newTestUC(repo, emb)

	req := validCreateReq()
	stored, err := uc.CreateProduct(context.Background(), req)
	require.NoError(t, err)

	hits, err := uc.SearchByDescription(context.Background(), NewSearchByDescriptionReq(ptr("smart lighting"), ptr(1.0)))
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, stored.ID, hits[0].Product.ID)
	related := hits[0].SimilarityScore

	hits, err = uc.SearchByDescription(context.Background(), NewSearchByDescriptionReq(ptr("fresh bananas"), ptr(1.0)))
	require.NoError(t, err)
	require.Len(t, hits, 1)
	unrelated := hits[0].SimilarityScore

	// Близкий по смыслу запрос даёт расстояние строго между идентичным
	// текстом (≈0) и посторонним запросом.
	assert.Greater(t, related, float32(0))
	assert.Less(t, related, unrelated)
}

func TestSearch_ResultsInNonDecreasingDistanceOrder(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"bulb one":   {1, 0},
		"bulb two":   {0.9, 0.435889894},
		"bulb three": {0, 1},
		"bulbs":      {1, 0},
	}}
	repo := &fakeProductRepo{}
	uc := newTestUC(repo, emb)

	for _, desc := range []string{"bulb one", "bulb two", "bulb three"} {
		req := validCreateReq()
		req.Description = ptr(desc)
		req.SKU = ptr("LMX-" + desc)
		_, err := uc.CreateProduct(context.Background(), req)
		require.NoError(t, err)
	}

	hits, err := uc.SearchByDescription(context.Background(), NewSearchByDescriptionReq(ptr("bulbs"), nil))
	require.NoError(t, err)
	require.Len(t, hits, 3)

	for i := 1; i < len(hits); i++ {
		assert.LessOrEqual(t, hits[i-1].SimilarityScore, hits[i].SimilarityScore)
	}
}

func TestSearch_EmptyEmbeddingIsAnError(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{"smart lighting": {}}}
	uc := newTestUC(&fakeProductRepo{}, emb)

	_, err := uc.SearchByDescription(context.Background(), NewSearchByDescriptionReq(ptr("smart lighting"), nil))
	assert.ErrorIs(t, err, e.ErrEmptyVector)
}
