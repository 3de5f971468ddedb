package entity

import (
	"time"

	domainerrors "storefront/internal/domain/errors"
)

// CartItem is a single line in a cart: one product, one merged quantity.
type CartItem struct {
	ProductID ProductID
	Quantity  Quantity
	AddedAt   time.Time
}

// Cart is the per-user collection of pending line items. Its identity is the
// owning user: there is exactly one cart per user, created lazily on first add.
// The line list is only reachable through the invariant-preserving methods
// below, which keep lines unique by product id.
type Cart struct {
	UserID    UserID
	items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCart creates an empty cart owned by the given user.
func NewCart(userID UserID) *Cart {
	now := time.Now()

	return &Cart{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RestoreCart rebuilds a cart from persisted lines. Used by the persistence
// layer; lines are assumed to already satisfy the uniqueness invariant.
func RestoreCart(userID UserID, items []CartItem, createdAt, updatedAt time.Time) *Cart {
	return &Cart{
		UserID:    userID,
		items:     items,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Items returns a copy of the line list in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)

	return out
}

// ItemFor returns the line for the given product, if present.
func (c *Cart) ItemFor(productID ProductID) (CartItem, bool) {
	for _, item := range c.items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return CartItem{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity.Value()
	}

	return total
}

// MergedQuantityWith returns the line quantity that adding the given amount
// would produce: the existing line plus the addition, or just the addition
// when the product has no line yet.
func (c *Cart) MergedQuantityWith(productID ProductID, addition Quantity) (Quantity, error) {
	existing, ok := c.ItemFor(productID)
	if !ok {
		return addition, nil
	}

	return existing.Quantity.Add(addition)
}

// AddItem merges the quantity into an existing line for the product, or
// appends a new line. Two lines never share a product id.
func (c *Cart) AddItem(productID ProductID, quantity Quantity) error {
	for i, item := range c.items {
		if item.ProductID != productID {
			continue
		}

		merged, err := item.Quantity.Add(quantity)
		if err != nil {
			return err
		}
		c.items[i].Quantity = merged
		c.UpdatedAt = time.Now()

		return nil
	}

	c.items = append(c.items, CartItem{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	})
	c.UpdatedAt = time.Now()

	return nil
}

// UpdateItem replaces the quantity of an existing line.
func (c *Cart) UpdateItem(productID ProductID, quantity Quantity) error {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items[i].Quantity = quantity
			c.UpdatedAt = time.Now()

			return nil
		}
	}

	return domainerrors.ErrCartItemNotFound
}

// RemoveItem deletes the line for the product. Removing the last line leaves
// an empty cart; the aggregate itself survives.
func (c *Cart) RemoveItem(productID ProductID) error {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.UpdatedAt = time.Now()

			return nil
		}
	}

	return domainerrors.ErrCartItemNotFound
}

// Clear removes every line at once.
func (c *Cart) Clear() {
	c.items = nil
	c.UpdatedAt = time.Now()
}
