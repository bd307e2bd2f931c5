package memory

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/refreshtoken"
)

func cloneOrder(o *order.Order) (*order.Order, error) {
	items := make([]*order.Item, 0, len(o.Items()))
	for _, item := range o.Items() {
		c, err := order.RestoreItem(item.ID(), item.ProductID(), item.Quantity(), item.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return order.RestoreOrder(o.ID(), o.CustomerID(), o.CreatedAtUTC(), o.Status(), items)
}

func cloneCustomer(c *customer.Customer) (*customer.Customer, error) {
	return customer.RestoreCustomer(c.ID(), c.Profile(), c.IsActive(), c.CreatedAtUTC())
}

func cloneProduct(p *product.Product) (*product.Product, error) {
	return product.RestoreProduct(p.ID(), p.Sku(), p.Name(), p.Price(), p.IsActive(), p.CreatedAtUTC())
}

func cloneToken(t *refreshtoken.RefreshToken) (*refreshtoken.RefreshToken, error) {
	return refreshtoken.RestoreRefreshToken(t.Snapshot())
}

func cloneAll[T any](items []T, clone func(T) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		c, err := clone(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
