// Package cart owns the session cart: its line items and every transition on them.
package cart

import (
	"sync"

	"snackshop/models"
	"snackshop/pricing"
)

// Observer is notified after each cart transition.
// version increases by one on every transition; calls may arrive out of order
// when mutations run on several goroutines, so observers compare versions.
type Observer interface {
	CartChanged(items []models.CartItem, version uint64)
}

// Engine holds the authoritative line items of a session.
// Each mutation runs as one critical section and is computed from the result
// of the previous one, so back-to-back AddItem calls for the same snack
// always end up on a single line.
type Engine struct {
	mu       sync.Mutex
	items    []models.CartItem
	version  uint64
	observer Observer
}

// Option configures an Engine
type Option func(*Engine)

// WithObserver registers an observer for cart transitions
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// NewEngine creates an empty cart
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddItem increments the line for snackID, or appends it with quantity 1.
// An empty snackID references no snack and is ignored.
func (e *Engine) AddItem(snackID string) {
	if snackID == "" {
		return
	}
	e.mutate(func(items []models.CartItem) []models.CartItem {
		if i := indexOf(items, snackID); i >= 0 {
			items[i].Quantity++
			return items
		}
		return append(items, models.CartItem{SnackID: snackID, Quantity: 1})
	})
}

// RemoveItem drops the line for snackID if present
func (e *Engine) RemoveItem(snackID string) {
	if snackID == "" {
		return
	}
	e.mutate(func(items []models.CartItem) []models.CartItem {
		return remove(items, snackID)
	})
}

// UpdateQuantity sets the quantity of an existing line.
// A quantity of zero or less removes the line; unknown ids are ignored.
func (e *Engine) UpdateQuantity(snackID string, quantity int) {
	if snackID == "" {
		return
	}
	e.mutate(func(items []models.CartItem) []models.CartItem {
		i := indexOf(items, snackID)
		if i < 0 {
			return items
		}
		if quantity <= 0 {
			return remove(items, snackID)
		}
		items[i].Quantity = quantity
		return items
	})
}

// ClearCart removes every line
func (e *Engine) ClearCart() {
	e.mutate(func([]models.CartItem) []models.CartItem {
		return nil
	})
}

// Settle takes submitted lines out of the cart after a checkout.
// Each line's quantity drops by the submitted amount and lines that reach
// zero are removed, so snacks added while the checkout was in flight stay.
func (e *Engine) Settle(submitted []models.CartItem) {
	if len(submitted) == 0 {
		return
	}
	e.mutate(func(items []models.CartItem) []models.CartItem {
		for _, sub := range submitted {
			i := indexOf(items, sub.SnackID)
			if i < 0 {
				continue
			}
			items[i].Quantity -= sub.Quantity
			if items[i].Quantity <= 0 {
				items = remove(items, sub.SnackID)
			}
		}
		return items
	})
}

// Restore replaces the cart with previously saved lines.
// Duplicate ids are merged and invalid lines dropped so the restored cart
// keeps one line per snack.
func (e *Engine) Restore(saved []models.CartItem) {
	e.mutate(func([]models.CartItem) []models.CartItem {
		var items []models.CartItem
		for _, item := range saved {
			if item.SnackID == "" || item.Quantity <= 0 {
				continue
			}
			if i := indexOf(items, item.SnackID); i >= 0 {
				items[i].Quantity += item.Quantity
				continue
			}
			items = append(items, item)
		}
		return items
	})
}

// Items returns a copy of the current lines in insertion order
func (e *Engine) Items() []models.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clone(e.items)
}

// Len returns the number of lines
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// Summary prices the current cart against catalog
func (e *Engine) Summary(catalog []models.Snack) models.CartSummary {
	return pricing.Summarize(e.Items(), catalog)
}

// Details joins the current cart with catalog for display
func (e *Engine) Details(catalog []models.Snack) []models.CartLineDetail {
	return pricing.LineDetails(e.Items(), catalog)
}

func (e *Engine) mutate(transition func([]models.CartItem) []models.CartItem) {
	e.mu.Lock()
	e.items = transition(clone(e.items))
	e.version++
	items, version := clone(e.items), e.version
	e.mu.Unlock()

	if e.observer != nil {
		e.observer.CartChanged(items, version)
	}
}

func indexOf(items []models.CartItem, snackID string) int {
	for i := range items {
		if items[i].SnackID == snackID {
			return i
		}
	}
	return -1
}

func remove(items []models.CartItem, snackID string) []models.CartItem {
	out := items[:0]
	for _, item := range items {
		if item.SnackID != snackID {
			out = append(out, item)
		}
	}
	return out
}

func clone(items []models.CartItem) []models.CartItem {
	if len(items) == 0 {
		return []models.CartItem{}
	}
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}
