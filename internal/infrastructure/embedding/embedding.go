// Package embedding — клиент внешней embedding-модели через
// OpenAI-совместимый HTTP API.
package embedding

import (
	"context"

	config "github.com/DRSN-tech/products-api/internal/cfg"
	"github.com/DRSN-tech/products-api/pkg/e"
	"github.com/DRSN-tech/products-api/pkg/logger"
	"github.com/jimlawless/whereami"
	openai "github.com/sashabaranov/go-openai"
)

// EmbeddingService — тонкая обёртка над embedding-эндпоинтом.
// Один синхронный вызов на запрос: без повторов, без отступлений,
// без кэширования — одинаковый текст векторизуется заново каждый раз.
type EmbeddingService struct {
	client *openai.Client
	model  openai.EmbeddingModel
	logger logger.Logger
}

func NewEmbeddingService(cfg *config.EmbeddingCfg, logger logger.Logger) *EmbeddingService {
	clientCfg := openai.DefaultConfig(cfg.ApiKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &EmbeddingService{
		client: openai.NewClientWithConfig(clientCfg),
		model:  openai.EmbeddingModel(cfg.Model),
		logger: logger,
	}
}

// Vectorize возвращает вектор для текста.
// Ответ модели возвращается как есть (первый элемент data); любая ошибка
// транспорта или не-2xx ответ прерывает объемлющий запрос.
func (s *EmbeddingService) Vectorize(ctx context.Context, text string) ([]float32, error) {
	const op = "EmbeddingService.Vectorize"

	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:          []string{text},
		Model:          s.model,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	})
	if err != nil {
		s.logger.Warnf("embedding request failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(op, err)
	}

	if len(resp.Data) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyVector)
	}

	return resp.Data[0].Embedding, nil
}
