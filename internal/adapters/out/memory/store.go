// Package memory is an in-process implementation of the persistence ports. It backs the
// service when no database is configured and the HTTP end-to-end tests.
//
// Committed state is an immutable snapshot: writers clone the maps, apply their staged
// operations and swap the snapshot under the lock. Aggregates are cloned on the way in and
// on the way out, so callers never share instances with the store.
package memory

import (
	"sync"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/refreshtoken"
)

type state struct {
	orders    map[kernel.UUID]*order.Order
	customers map[kernel.UUID]*customer.Customer
	products  map[kernel.UUID]*product.Product
	tokens    map[kernel.UUID]*refreshtoken.RefreshToken
}

func newState() *state {
	return &state{
		orders:    make(map[kernel.UUID]*order.Order),
		customers: make(map[kernel.UUID]*customer.Customer),
		products:  make(map[kernel.UUID]*product.Product),
		tokens:    make(map[kernel.UUID]*refreshtoken.RefreshToken),
	}
}

// clone copies the maps. Stored aggregates are never mutated, so sharing them is safe.
func (s *state) clone() *state {
	next := &state{
		orders:    make(map[kernel.UUID]*order.Order, len(s.orders)),
		customers: make(map[kernel.UUID]*customer.Customer, len(s.customers)),
		products:  make(map[kernel.UUID]*product.Product, len(s.products)),
		tokens:    make(map[kernel.UUID]*refreshtoken.RefreshToken, len(s.tokens)),
	}
	for k, v := range s.orders {
		next.orders[k] = v
	}
	for k, v := range s.customers {
		next.customers[k] = v
	}
	for k, v := range s.products {
		next.products[k] = v
	}
	for k, v := range s.tokens {
		next.tokens[k] = v
	}
	return next
}

// op is one staged write. It checks its preconditions before touching the maps and may be
// applied more than once.
type op func(*state) error

// Store holds the committed snapshot.
type Store struct {
	mu    sync.RWMutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// apply runs ops against a copy of the current snapshot and publishes it only if every op
// succeeds.
func (s *Store) apply(ops []op) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	for _, o := range ops {
		if err := o(next); err != nil {
			return err
		}
	}
	s.state = next
	return nil
}
