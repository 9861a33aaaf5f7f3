package model

import "github.com/shopspring/decimal"

type CartItem struct {
	ScriptID int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Author   string          `json:"author,omitempty"`
	Language string          `json:"language,omitempty"`
	Category string          `json:"category,omitempty"`
	Type     string          `json:"type,omitempty"`
}

// Cart keeps insertion order. Item prices are whatever the caller supplied.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add inserts item with quantity 1, or bumps the quantity of an existing line.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ScriptID == item.ScriptID {
			c.Items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

func (c *Cart) Remove(scriptID int64) {
	items := c.Items[:0]
	for _, it := range c.Items {
		if it.ScriptID != scriptID {
			items = append(items, it)
		}
	}
	c.Items = items
}

// UpdateQuantity sets the quantity of a line; zero or less removes it.
func (c *Cart) UpdateQuantity(scriptID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(scriptID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ScriptID == scriptID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
