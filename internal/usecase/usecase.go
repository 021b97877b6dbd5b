package usecase

import (
	"context"

	"github.com/DRSN-tech/products-api/internal/domain"
)

type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	SearchByDescription(ctx context.Context, req *SearchByDescriptionReq) ([]domain.SearchHit, error)
	SearchByTags(ctx context.Context, req *SearchByTagsReq) ([]domain.SearchHit, error)
	SearchByFeatures(ctx context.Context, req *SearchByFeaturesReq) ([]domain.SearchHit, error)
}
