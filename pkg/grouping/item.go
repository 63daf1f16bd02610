// Package grouping supports lists of items rendered as a visual group:
// diffing an old list against a new one and picking the corner mode of
// each member so that stacked containers read as a single card.
package grouping

// Item is an entry of a grouped list.
type Item interface {
	// ItemType reports the item's view type for heterogeneous lists. The
	// second result is false when the item has no type.
	ItemType() (int, bool)
	// IsItemsSame reports whether other is the same logical item, usually
	// by comparing keys.
	IsItemsSame(other Item) bool
	// IsContentsSame reports whether other has equal contents and so needs
	// no redraw.
	IsContentsSame(other Item) bool
}

// ItemCallback compares the entries of two lists by position.
type ItemCallback struct {
	Old []Item
	New []Item
}

// OldSize returns the length of the old list.
func (c ItemCallback) OldSize() int { return len(c.Old) }

// NewSize returns the length of the new list.
func (c ItemCallback) NewSize() int { return len(c.New) }

// AreItemsTheSame reports whether Old[oldPos] and New[newPos] are the same
// logical item. Items of different types are never the same.
func (c ItemCallback) AreItemsTheSame(oldPos, newPos int) bool {
	o, n := c.Old[oldPos], c.New[newPos]
	if !sameType(o, n) {
		return false
	}
	return o.IsItemsSame(n)
}

// AreContentsTheSame reports whether Old[oldPos] and New[newPos] have
// equal contents. It is only consulted for items that are the same.
func (c ItemCallback) AreContentsTheSame(oldPos, newPos int) bool {
	return c.Old[oldPos].IsContentsSame(c.New[newPos])
}

func sameType(a, b Item) bool {
	if a == nil || b == nil {
		return false
	}
	at, aok := a.ItemType()
	bt, bok := b.ItemType()
	return aok == bok && at == bt
}
