package clients

import (
	"context"
	"fmt"

	config "github.com/DRSN-tech/products-api/internal/cfg"
	"github.com/DRSN-tech/products-api/internal/domain"
	"github.com/DRSN-tech/products-api/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
)

type QdrantClient struct {
	Client *qdrant.Client
	cfg    *config.QdrantCfg
}

func NewQdrantClient(cfg *config.QdrantCfg) (*QdrantClient, error) {
	qdrantClient, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.ApiKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &QdrantClient{
		Client: qdrantClient,
		cfg:    cfg,
	}, nil
}

// EnsureCollection идемпотентно создаёт коллекцию товаров.
// Вызывается ровно один раз на старте процесса, до запуска обработчиков.
// Коллекция создаётся с тремя именованными векторами (описание, теги,
// характеристики), все с косинусной метрикой. Размерность фиксируется
// в момент создания и не может быть изменена — смена VECTOR_SIZE требует
// новой коллекции.
func EnsureCollection(ctx context.Context, client *QdrantClient) error {
	exists, err := client.Client.CollectionExists(ctx, client.cfg.CollectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}

	if !exists {
		vectorParams := make(map[string]*qdrant.VectorParams, len(domain.VectorFields))
		for _, field := range domain.VectorFields {
			vectorParams[string(field)] = &qdrant.VectorParams{
				Size:     client.cfg.VectorSize,
				Distance: qdrant.Distance_Cosine,
			}
		}

		if err := client.Client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: client.cfg.CollectionName,
			VectorsConfig:  qdrant.NewVectorsConfigMap(vectorParams),
		}); err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
	}

	return nil
}
