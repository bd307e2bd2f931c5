package queries

import (
	"context"

	"ordering/internal/pkg/paging"
)

type ListProductsQueryHandler struct {
	products ProductReader
}

func NewListProductsQueryHandler(products ProductReader) ListProductsQueryHandler {
	return ListProductsQueryHandler{products: products}
}

func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) (paging.Result[ProductDetails], error) {
	if err := query.Validate(); err != nil {
		return paging.Result[ProductDetails]{}, err
	}

	products, total, err := h.products.ListPaged(
		ctx, query.page, query.pageSize, query.filter, query.sortBy, query.direction,
	)
	if err != nil {
		return paging.Result[ProductDetails]{}, err
	}

	return paging.MapResult(paging.NewResult(products, query.page, query.pageSize, total), toProductDetails), nil
}

type GetProductByIDQueryHandler struct {
	products ProductReader
}

func NewGetProductByIDQueryHandler(products ProductReader) GetProductByIDQueryHandler {
	return GetProductByIDQueryHandler{products: products}
}

// Handle returns errs.ObjectNotFoundError when the product does not exist.
func (h GetProductByIDQueryHandler) Handle(ctx context.Context, query GetProductByIDQuery) (ProductDetails, error) {
	if err := query.Validate(); err != nil {
		return ProductDetails{}, err
	}

	p, err := h.products.Get(ctx, query.productID)
	if err != nil {
		return ProductDetails{}, err
	}

	return toProductDetails(p), nil
}
