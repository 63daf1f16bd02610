package testing

import (
	"fmt"
	"strings"

	"github.com/design2/chili/pkg/graphics"
)

// Finder locates operations in a recorded display list.
type Finder interface {
	// Evaluate returns the indices of every matching op, in paint order.
	Evaluate(ops []DisplayOp) []int
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	ops     []DisplayOp
	indices []int
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() DisplayOp {
	return r.ops[r.FirstIndex()]
}

// FirstIndex returns the paint-order index of the first match. Panics if
// no matches.
func (r FinderResult) FirstIndex() int {
	if len(r.indices) == 0 {
		panic(fmt.Sprintf("Finder found no ops: %s", r.describe()))
	}
	return r.indices[0]
}

// LastIndex returns the paint-order index of the last match. Panics if
// no matches.
func (r FinderResult) LastIndex() int {
	if len(r.indices) == 0 {
		panic(fmt.Sprintf("Finder found no ops: %s", r.describe()))
	}
	return r.indices[len(r.indices)-1]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) DisplayOp {
	if index < 0 || index >= len(r.indices) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.indices), r.describe()))
	}
	return r.ops[r.indices[index]]
}

// All returns all matches in paint order.
func (r FinderResult) All() []DisplayOp {
	out := make([]DisplayOp, len(r.indices))
	for i, idx := range r.indices {
		out[i] = r.ops[idx]
	}
	return out
}

// Indices returns the paint-order index of every match.
func (r FinderResult) Indices() []int {
	return r.indices
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.indices)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.indices) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

type predicateFinder struct {
	desc string
	fn   func(DisplayOp) bool
}

func (f *predicateFinder) Evaluate(ops []DisplayOp) []int {
	var out []int
	for i, op := range ops {
		if f.fn(op) {
			out = append(out, i)
		}
	}
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByOp finds ops by name, such as "drawPath" or "clipPath".
func ByOp(name string) Finder {
	return &predicateFinder{
		desc: fmt.Sprintf("op %q", name),
		fn:   func(op DisplayOp) bool { return op.Op == name },
	}
}

// ByColor finds draw ops painted with color.
func ByColor(color graphics.Color) Finder {
	want := serializeColor(color)
	return &predicateFinder{
		desc: "color " + want,
		fn: func(op DisplayOp) bool {
			return strings.HasPrefix(op.Op, "draw") && op.Color() == want
		},
	}
}

// ByShader finds draw ops painted with a gradient shader.
func ByShader() Finder {
	return &predicateFinder{
		desc: "shader",
		fn: func(op DisplayOp) bool {
			_, ok := op.Params["shader"]
			return ok
		},
	}
}

// ByPredicate finds ops matching fn.
func ByPredicate(fn func(DisplayOp) bool) Finder {
	return &predicateFinder{desc: "predicate", fn: fn}
}

// And finds ops matched by every finder.
func And(finders ...Finder) Finder {
	descs := make([]string, len(finders))
	for i, f := range finders {
		descs[i] = f.Description()
	}
	return &andFinder{finders: finders, desc: strings.Join(descs, " and ")}
}

type andFinder struct {
	finders []Finder
	desc    string
}

func (f *andFinder) Evaluate(ops []DisplayOp) []int {
	if len(f.finders) == 0 {
		return nil
	}
	counts := make(map[int]int)
	for _, finder := range f.finders {
		for _, i := range finder.Evaluate(ops) {
			counts[i]++
		}
	}
	var out []int
	for i := range ops {
		if counts[i] == len(f.finders) {
			out = append(out, i)
		}
	}
	return out
}

func (f *andFinder) Description() string {
	return f.desc
}
