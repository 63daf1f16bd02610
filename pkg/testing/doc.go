// Package testing provides display-list testing helpers for chili.
//
// # Quick Start
//
// Capture what a container paints and assert on the recorded ops:
//
//	func TestCard(t *testing.T) {
//	    layout := shadowlayout.New(attrs)
//	    layout.Layout(200, 100)
//
//	    snap := chilitest.Capture(graphics.Size{Width: 200, Height: 100}, layout.Draw)
//
//	    fill := snap.Find(chilitest.ByColor(graphics.ColorBlue))
//	    if !fill.Exists() {
//	        t.Fatal("expected background fill")
//	    }
//	}
//
// Finder results expose paint-order indices, so draw order can be checked
// by comparing FirstIndex and LastIndex of two finders.
//
// # Snapshot Testing
//
// Compare a capture against a golden file:
//
//	snap.MatchesFile(t, "testdata/card.snapshot.json")
//
// Update snapshots with:
//
//	CHILI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import chilitest "github.com/design2/chili/pkg/testing"
package testing
