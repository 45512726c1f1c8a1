package models

import (
	"slices"
	"time"
)

// CartKey identifies one cart line. Two lines of the same product in
// different sizes or colors are different lines.
type CartKey struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Size      string `json:"size" validate:"max=40"`
	Color     string `json:"color" validate:"max=60"`
}

type CartItem struct {
	ProductID int64     `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unitPrice"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Quantity  int       `json:"quantity"`
	ImageRef  string    `json:"imageRef"`
	Slug      string    `json:"slug"`
	AddedAt   time.Time `json:"addedAt"`
}

func (i CartItem) Key() CartKey {
	return CartKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

func (i CartItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

type Cart struct {
	GuestID   string     `json:"guestId"`
	Items     []CartItem `json:"items"`
	Version   int64      `json:"version"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (c *Cart) find(key CartKey) int {
	return slices.IndexFunc(c.Items, func(it CartItem) bool { return it.Key() == key })
}

// Add merges the item into an existing line with the same key (+1) or
// appends it with quantity 1.
func (c *Cart) Add(item CartItem) {
	if idx := c.find(item.Key()); idx >= 0 {
		c.Items[idx].Quantity++
		return
	}

	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// UpdateQuantity overwrites the quantity of the matching line. It reports
// false and leaves the cart untouched when quantity < 1 or no line matches.
func (c *Cart) UpdateQuantity(key CartKey, quantity int) bool {
	if quantity < 1 {
		return false
	}

	idx := c.find(key)
	if idx < 0 {
		return false
	}

	c.Items[idx].Quantity = quantity

	return true
}

func (c *Cart) Remove(key CartKey) bool {
	before := len(c.Items)
	c.Items = slices.DeleteFunc(c.Items, func(it CartItem) bool { return it.Key() == key })

	return len(c.Items) != before
}

// Subtract takes the quantities of lines off the cart, dropping lines that
// reach zero. Lines and quantities added since lines were read stay.
func (c *Cart) Subtract(lines []CartItem) bool {
	changed := false

	for _, line := range lines {
		idx := c.find(line.Key())
		if idx < 0 {
			continue
		}

		changed = true
		if c.Items[idx].Quantity > line.Quantity {
			c.Items[idx].Quantity -= line.Quantity
			continue
		}

		c.Items = slices.Delete(c.Items, idx, idx+1)
	}

	return changed
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, it := range c.Items {
		count += it.Quantity
	}

	return count
}

func (c *Cart) Subtotal() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.LineTotal()
	}

	return total
}

func (c *Cart) View() *CartView {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}

	return &CartView{Items: items, ItemCount: c.ItemCount(), Subtotal: c.Subtotal()}
}

type CartView struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Subtotal  int64      `json:"subtotal"`
}

type AddItemRequest struct {
	CartKey
}

// Quantity carries no validation tag: values below 1 are accepted and ignored.
type UpdateQuantityRequest struct {
	CartKey
	Quantity int `json:"quantity"`
}

type RemoveItemRequest struct {
	CartKey
}

// CartChanged is broadcast after every cart mutation.
type CartChanged struct {
	GuestID   string `json:"guestId"`
	ItemCount int    `json:"itemCount"`
}
