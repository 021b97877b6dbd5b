package usecase

import (
	"context"

	"github.com/DRSN-tech/products-api/internal/domain"
)

type ProductRepository interface {
	// Create вставляет новый документ. Если товар с таким ID уже существует,
	// возвращается e.ErrProductAlreadyExists.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// GetByID возвращает товар по идентификатору или e.ErrProductNotFound.
	// Отсутствие товара — не сбой: вызывающий различает его через errors.Is.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// ListAll возвращает все товары коллекции без векторных полей.
	ListAll(ctx context.Context) ([]domain.Product, error)
	// SearchByVector запрашивает у хранилища top ближайших товаров к вектору
	// по заданному векторному полю. Ранжирование выполняет индекс хранилища.
	SearchByVector(ctx context.Context, field domain.VectorField, vector []float32, top uint64) ([]domain.SearchHit, error)
}
