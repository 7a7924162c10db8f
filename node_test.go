package chess

import "testing"

func TestGameNodeMainlineAndBoard(t *testing.T) {
	root := newRootNode("")
	e4 := root.AddVariation(mustUCI(t, "e2e4"), AnnotationOpts{})
	e5 := e4.AddVariation(mustUCI(t, "e7e5"), AnnotationOpts{})

	line := root.Mainline()
	if len(line) != 2 {
		t.Fatalf("len(Mainline()) = %d, want 2", len(line))
	}
	if line[0] != e4 || line[1] != e5 {
		t.Fatal("Mainline() order mismatch")
	}

	board := e5.Board()
	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"
	if got := board.FEN(); got != want {
		t.Errorf("Board().FEN() = %q, want %q", got, want)
	}
}

func TestGameNodeVariationIsSiblingOfReplacedMove(t *testing.T) {
	root := newRootNode("")
	e4 := root.AddVariation(mustUCI(t, "e2e4"), AnnotationOpts{})
	e5 := e4.AddVariation(mustUCI(t, "e7e5"), AnnotationOpts{})

	// A variation replacing e5 (e.g. 1...c5) attaches as a sibling of e5
	// under e4, not as a child of e5.
	c5 := e4.AddVariation(mustUCI(t, "c7c5"), AnnotationOpts{})

	if c5.Parent() != e4 {
		t.Fatal("variation should be a child of e4 (the parent), not of e5")
	}
	if len(e4.Variations()) != 2 {
		t.Fatalf("e4 should have 2 children (e5, c5), got %d", len(e4.Variations()))
	}
	if e4.Variations()[0] != e5 {
		t.Error("e5 should remain the mainline (variations[0])")
	}
	if e5.Parent() != e4 {
		t.Error("e5's parent should still be e4")
	}
}

func TestGameNodeInvalidateBoard(t *testing.T) {
	root := newRootNode("")
	e4 := root.AddVariation(mustUCI(t, "e2e4"), AnnotationOpts{})
	cachedBefore := e4.Board().FEN() // materializes and caches e4's board
	e4.AddVariation(mustUCI(t, "e7e5"), AnnotationOpts{})
	// Adding a child under e4 must not perturb e4's own cached position.
	if got := e4.Board().FEN(); got != cachedBefore {
		t.Errorf("e4.Board().FEN() changed after adding a child: got %q, want %q", got, cachedBefore)
	}
}

func TestGameNodePromoteToMain(t *testing.T) {
	root := newRootNode("")
	e4 := root.AddVariation(mustUCI(t, "e2e4"), AnnotationOpts{})
	d4 := root.AddVariation(mustUCI(t, "d2d4"), AnnotationOpts{})

	d4.PromoteToMain()
	if root.Variations()[0] != d4 {
		t.Error("d4 should now be the mainline")
	}
	if root.Variations()[1] != e4 {
		t.Error("e4 should now be the first alternate")
	}
}

func TestGameNodeRemoveVariation(t *testing.T) {
	root := newRootNode("")
	e4 := root.AddVariation(mustUCI(t, "e2e4"), AnnotationOpts{})
	d4 := root.AddVariation(mustUCI(t, "d2d4"), AnnotationOpts{})
	root.RemoveVariation(d4)
	if len(root.Variations()) != 1 || root.Variations()[0] != e4 {
		t.Fatal("RemoveVariation did not remove d4")
	}
	if d4.Parent() != nil {
		t.Error("removed node should have a nil parent")
	}
}

func TestGameNodeCountNodesAndPly(t *testing.T) {
	root := newRootNode("")
	e4 := root.AddVariation(mustUCI(t, "e2e4"), AnnotationOpts{})
	e5 := e4.AddVariation(mustUCI(t, "e7e5"), AnnotationOpts{})
	if root.CountNodes() != 3 {
		t.Errorf("CountNodes() = %d, want 3", root.CountNodes())
	}
	if e5.Ply() != 2 {
		t.Errorf("Ply() = %d, want 2", e5.Ply())
	}
	if e5.MoveNumber() != 2 {
		t.Errorf("MoveNumber() = %d, want 2", e5.MoveNumber())
	}
}

func TestGameNodePromoteDemoteThreeVariations(t *testing.T) {
	root := newRootNode("")
	e4 := root.AddVariation(mustUCI(t, "e2e4"), AnnotationOpts{})
	d4 := root.AddVariation(mustUCI(t, "d2d4"), AnnotationOpts{})
	c4 := root.AddVariation(mustUCI(t, "c2c4"), AnnotationOpts{})
	// root.Variations() starts as [e4, d4, c4].

	d4.Promote()
	if vars := root.Variations(); vars[0] != d4 || vars[1] != e4 || vars[2] != c4 {
		t.Fatalf("after d4.Promote(), order = %v, want [d4, e4, c4]", vars)
	}

	c4.Demote() // already last: no-op
	if vars := root.Variations(); vars[2] != c4 {
		t.Fatalf("Demote() on the last sibling should be a no-op, got order %v", vars)
	}

	e4.Demote()
	if vars := root.Variations(); vars[0] != d4 || vars[1] != c4 || vars[2] != e4 {
		t.Fatalf("after e4.Demote(), order = %v, want [d4, c4, e4]", vars)
	}

	e4.PromoteToMain()
	vars := root.Variations()
	if vars[0] != e4 || vars[1] != d4 || vars[2] != c4 {
		t.Fatalf("after e4.PromoteToMain(), order = %v, want [e4, d4, c4]", vars)
	}
}

func mustUCI(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseUCI(s)
	if err != nil {
		t.Fatalf("ParseUCI(%q) error: %v", s, err)
	}
	return m
}
