package qdrant

import (
	"context"

	"github.com/DRSN-tech/products-api/internal/cfg"
	"github.com/DRSN-tech/products-api/internal/domain"
	"github.com/DRSN-tech/products-api/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
)

// scrollPageSize — размер страницы при чтении всей коллекции.
const scrollPageSize = 256

// ProductRepo реализует репозиторий товаров поверх коллекции Qdrant.
// Репозиторий только строит параметризованные запросы: ранжирование
// ближайших соседей выполняет индекс хранилища. Клиент обязан быть
// инициализирован (коллекция создана) до первого вызова — этим занимается
// composition root на старте процесса.
type ProductRepo struct {
	client *qdrant.Client
	cfg    *cfg.QdrantCfg
}

func NewProductRepo(client *qdrant.Client, cfg *cfg.QdrantCfg) *ProductRepo {
	return &ProductRepo{
		client: client,
		cfg:    cfg,
	}
}

// Create вставляет новый товар одной точкой: payload с невекторными полями
// и именованные векторы. Существующий идентификатор — конфликт.
func (r *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	existing, err := r.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: r.cfg.CollectionName,
		Ids:            []*qdrant.PointId{qdrant.NewIDUUID(product.ID)},
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(existing) > 0 {
		return nil, e.ErrProductAlreadyExists
	}

	vectors := make(map[string]*qdrant.Vector)
	for name, values := range toVectors(product) {
		vectors[name] = qdrant.NewVectorDense(values)
	}

	_, err = r.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: r.cfg.CollectionName,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewIDUUID(product.ID),
				Vectors: qdrant.NewVectorsMap(vectors),
				Payload: qdrant.NewValueMap(toPayload(product)),
			},
		},
		Wait: qdrant.PtrOf(true),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

// GetByID возвращает товар по идентификатору точки, включая векторы.
// Пустой результат — e.ErrProductNotFound, а не ошибка транспорта.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	points, err := r.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: r.cfg.CollectionName,
		Ids:            []*qdrant.PointId{qdrant.NewIDUUID(id)},
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(points) == 0 {
		return nil, e.ErrProductNotFound
	}

	point := points[0]
	product := toEntity(point.Id.GetUuid(), point.Payload)
	attachPointVectors(product, point.Vectors)

	return product, nil
}

// ListAll постранично вычитывает всю коллекцию без векторов.
// Используется низкоуровневый Scroll: высокоуровневый клиент не
// возвращает NextPageOffset, без которого нельзя дочитать коллекцию.
func (r *ProductRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	points := r.client.GetPointsClient()

	products := make([]domain.Product, 0)
	var offset *qdrant.PointId
	for {
		resp, err := points.Scroll(ctx, &qdrant.ScrollPoints{
			CollectionName: r.cfg.CollectionName,
			Limit:          qdrant.PtrOf(uint32(scrollPageSize)),
			Offset:         offset,
			WithPayload:    qdrant.NewWithPayload(true),
			WithVectors:    qdrant.NewWithVectors(false),
		})
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		for _, point := range resp.GetResult() {
			products = append(products, *toEntity(point.Id.GetUuid(), point.Payload))
		}

		offset = resp.GetNextPageOffset()
		if offset == nil {
			break
		}
	}

	return products, nil
}

// SearchByVector запрашивает top ближайших товаров к вектору запроса по
// заданному векторному полю. Qdrant возвращает косинусную близость
// (больше — ближе); наружу отдаётся косинусное расстояние 1-score,
// поэтому результат упорядочен по неубыванию: меньше — релевантнее.
func (r *ProductRepo) SearchByVector(ctx context.Context, field domain.VectorField, vector []float32, top uint64) ([]domain.SearchHit, error) {
	scored, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.cfg.CollectionName,
		Query:          qdrant.NewQuery(vector...),
		Using:          qdrant.PtrOf(string(field)),
		Limit:          qdrant.PtrOf(top),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	hits := make([]domain.SearchHit, 0, len(scored))
	for _, point := range scored {
		product := toEntity(point.Id.GetUuid(), point.Payload)
		hits = append(hits, domain.NewSearchHit(*product, 1-point.Score))
	}

	return hits, nil
}
