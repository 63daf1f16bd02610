package grouping

import (
	"fmt"

	"github.com/design2/chili/pkg/errors"
)

// OpKind identifies a list update.
type OpKind int

const (
	// OpRemove deletes the item at Index.
	OpRemove OpKind = iota
	// OpInsert inserts Item at Index.
	OpInsert
	// OpChange replaces the item at Index with Item, which is the same
	// logical item with different contents.
	OpChange
)

func (k OpKind) String() string {
	switch k {
	case OpRemove:
		return "remove"
	case OpInsert:
		return "insert"
	case OpChange:
		return "change"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one list update. Index refers to the list as it stands after every
// preceding Op has been applied.
type Op struct {
	Kind  OpKind
	Index int
	Item  Item
}

func (o Op) String() string {
	return fmt.Sprintf("%s@%d", o.Kind, o.Index)
}

// Diff returns the updates that turn oldItems into newItems. Items are aligned on
// their longest common subsequence under AreItemsTheSame; aligned items
// with different contents become OpChange, the rest are removed or
// inserted. Within a gap removals come before insertions.
func Diff(oldItems, newItems []Item) []Op {
	return DiffCallback(ItemCallback{Old: oldItems, New: newItems})
}

// DiffCallback is Diff over an explicit callback.
func DiffCallback(cb ItemCallback) []Op {
	n, m := cb.OldSize(), cb.NewSize()

	// lcs[i][j] is the common subsequence length of Old[i:] and New[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if cb.AreItemsTheSame(i, j) {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var ops []Op
	pos := 0
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && cb.AreItemsTheSame(i, j) && lcs[i][j] == lcs[i+1][j+1]+1:
			if !cb.AreContentsTheSame(i, j) {
				ops = append(ops, Op{Kind: OpChange, Index: pos, Item: cb.New[j]})
			}
			pos++
			i++
			j++
		case i < n && (j == m || lcs[i+1][j] >= lcs[i][j+1]):
			ops = append(ops, Op{Kind: OpRemove, Index: pos})
			i++
		default:
			ops = append(ops, Op{Kind: OpInsert, Index: pos, Item: cb.New[j]})
			pos++
			j++
		}
	}
	return ops
}

// Apply applies ops in order to a copy of list.
func Apply(list []Item, ops []Op) ([]Item, error) {
	out := append([]Item(nil), list...)
	for _, op := range ops {
		switch op.Kind {
		case OpRemove:
			if err := errors.CheckIndex("grouping.Apply", op.Index, len(out)); err != nil {
				return nil, err
			}
			out = append(out[:op.Index], out[op.Index+1:]...)
		case OpInsert:
			if err := errors.CheckIndex("grouping.Apply", op.Index, len(out)+1); err != nil {
				return nil, err
			}
			out = append(out, nil)
			copy(out[op.Index+1:], out[op.Index:])
			out[op.Index] = op.Item
		case OpChange:
			if err := errors.CheckIndex("grouping.Apply", op.Index, len(out)); err != nil {
				return nil, err
			}
			out[op.Index] = op.Item
		default:
			return nil, fmt.Errorf("grouping: unknown op %v", op.Kind)
		}
	}
	return out, nil
}
