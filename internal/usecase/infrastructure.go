package usecase

import "context"

type EmbeddingInfra interface {
	// Vectorize получает вектор для текста у внешней embedding-модели.
	// Один синхронный вызов, без повторов и кэширования.
	Vectorize(ctx context.Context, text string) ([]float32, error)
}
