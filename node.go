package chess

import "golang.org/x/exp/slices"

// An Arrow is a colored annotation drawn from one square to another
// (PGN's "[%cal ...]" command).
type Arrow struct {
	Color byte // one of 'R','G','B','Y'
	Tail  Square
	Head  Square
}

// A Shape is a colored highlight on a single square (PGN's
// "[%csl ...]" command).
type Shape struct {
	Color  byte
	Square Square
}

// AnnotationOpts carries the optional annotation fields accepted by
// AddVariation and AddLine.
type AnnotationOpts struct {
	Comment         string
	StartingComment string
	NAGs            []int
}

// A GameNode is one position in a game tree: the move that led to it, its
// annotations, and its child variations (element 0 is the mainline
// continuation). The root node of a Game has no move.
type GameNode struct {
	parent          *GameNode
	hasMove         bool
	move            Move
	variations      []*GameNode
	comment         string
	startingComment string
	nags            map[int]bool
	clock           *int // seconds, nil if unset
	eval            *float64
	arrows          []Arrow
	shapes          []Shape

	startFEN string // meaningful only on the root (parent == nil)
	board    *Board // lazily materialized cache, nil until Board() is called
}

func newRootNode(startFEN string) *GameNode {
	return &GameNode{startFEN: startFEN}
}

// Move returns the move that led to this node and whether the node has one
// (false only for the root).
func (n *GameNode) Move() (Move, bool) {
	return n.move, n.hasMove
}

// Parent returns the node's parent, or nil for the root.
func (n *GameNode) Parent() *GameNode { return n.parent }

// Variations returns the node's children; element 0, if any, is the
// mainline continuation.
func (n *GameNode) Variations() []*GameNode {
	return n.variations
}

// Comment returns the after-move comment attached to this node.
func (n *GameNode) Comment() string { return n.comment }

// SetComment sets the after-move comment.
func (n *GameNode) SetComment(c string) { n.comment = c }

// StartingComment returns the comment that precedes this node when it
// begins a variation.
func (n *GameNode) StartingComment() string { return n.startingComment }

// SetStartingComment sets the starting comment.
func (n *GameNode) SetStartingComment(c string) { n.startingComment = c }

// NAGs returns the set of Numeric Annotation Glyphs attached to this node,
// as a sorted slice.
func (n *GameNode) NAGs() []int {
	out := make([]int, 0, len(n.nags))
	for nag := range n.nags {
		out = append(out, nag)
	}
	slices.Sort(out)
	return out
}

// AddNAG adds nag to the node's NAG set.
func (n *GameNode) AddNAG(nag int) {
	if n.nags == nil {
		n.nags = make(map[int]bool)
	}
	n.nags[nag] = true
}

// Clock returns the parsed "[%clk]" time in seconds, and whether one was
// set.
func (n *GameNode) Clock() (int, bool) {
	if n.clock == nil {
		return 0, false
	}
	return *n.clock, true
}

// SetClock sets the clock annotation in seconds.
func (n *GameNode) SetClock(seconds int) {
	n.clock = &seconds
}

// Eval returns the parsed "[%eval]" value and whether one was set.
func (n *GameNode) Eval() (float64, bool) {
	if n.eval == nil {
		return 0, false
	}
	return *n.eval, true
}

// SetEval sets the eval annotation.
func (n *GameNode) SetEval(v float64) {
	n.eval = &v
}

// Arrows returns the node's "[%cal]" arrow annotations.
func (n *GameNode) Arrows() []Arrow { return n.arrows }

// SetArrows replaces the node's arrow annotations.
func (n *GameNode) SetArrows(a []Arrow) { n.arrows = a }

// Shapes returns the node's "[%csl]" square-highlight annotations.
func (n *GameNode) Shapes() []Shape { return n.shapes }

// SetShapes replaces the node's shape annotations.
func (n *GameNode) SetShapes(s []Shape) { n.shapes = s }

// Board returns an owned copy of the position after this node's move. The
// first call ascends to the root, replays the mainline-of-ancestors chain
// from the root's starting position, and caches the result; later calls
// copy from the cache.
func (n *GameNode) Board() *Board {
	if n.board == nil {
		n.board = n.materializeBoard()
	}
	return n.board.Copy()
}

func (n *GameNode) materializeBoard() *Board {
	var chain []*GameNode
	for cur := n; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	root := chain[len(chain)-1]
	b, err := NewBoard(root.startFEN)
	if err != nil {
		// A root built from a malformed FEN header falls back to the
		// standard starting position rather than panicking here.
		b, _ = NewBoard()
	}
	for i := len(chain) - 2; i >= 0; i-- {
		step := chain[i]
		if step.hasMove && !step.move.IsDrop() {
			_ = b.Push(step.move)
		}
	}
	return b
}

// InvalidateBoard clears this node's cached board and recurses into every
// descendant. Any structural mutation under this node must be followed by
// a call to InvalidateBoard on the nearest ancestor whose cache could be
// stale; AddVariation, AddMainVariation and RemoveVariation do this
// automatically. Promote, Demote and PromoteToMain only reorder siblings,
// which changes no node's position, and do not invalidate.
func (n *GameNode) InvalidateBoard() {
	n.board = nil
	for _, child := range n.variations {
		child.InvalidateBoard()
	}
}

// FEN returns the FEN of the position at this node.
func (n *GameNode) FEN() string {
	return n.Board().FEN()
}

// SAN returns the SAN text of the move that led to this node, or "" at the
// root.
func (n *GameNode) SAN() string {
	if n.parent == nil {
		return ""
	}
	return n.parent.Board().SAN(n.move)
}

// UCI returns the UCI text of the move that led to this node, or "" at the
// root.
func (n *GameNode) UCI() string {
	if !n.hasMove {
		return ""
	}
	return n.move.UCI()
}

// IsEnd reports whether this node has no children.
func (n *GameNode) IsEnd() bool {
	return len(n.variations) == 0
}

// IsMainVariation reports whether this node is variation 0 of its parent
// (always true for the root).
func (n *GameNode) IsMainVariation() bool {
	if n.parent == nil {
		return true
	}
	return len(n.parent.variations) > 0 && n.parent.variations[0] == n
}

// IsMainline reports whether every step from the root to this node is a
// main variation.
func (n *GameNode) IsMainline() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.IsMainVariation() {
			return false
		}
	}
	return true
}

// Root ascends to the root of the tree.
func (n *GameNode) Root() *GameNode {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// End descends the mainline (variations[0]) until a leaf.
func (n *GameNode) End() *GameNode {
	cur := n
	for len(cur.variations) > 0 {
		cur = cur.variations[0]
	}
	return cur
}

// Next returns the mainline continuation (variations[0]), or nil at a leaf.
func (n *GameNode) Next() *GameNode {
	if len(n.variations) == 0 {
		return nil
	}
	return n.variations[0]
}

// Mainline returns variations[0], its variations[0], and so on until a
// leaf. The slice is freshly computed on every call.
func (n *GameNode) Mainline() []*GameNode {
	var out []*GameNode
	for cur := n.Next(); cur != nil; cur = cur.Next() {
		out = append(out, cur)
	}
	return out
}

// MainlineMoves returns the move of each node in Mainline().
func (n *GameNode) MainlineMoves() []Move {
	line := n.Mainline()
	out := make([]Move, len(line))
	for i, node := range line {
		out[i] = node.move
	}
	return out
}

// HasVariation reports whether some child was reached by move m.
func (n *GameNode) HasVariation(m Move) bool {
	return n.Variation(m) != nil
}

// Variation returns the child reached by move m, or nil.
func (n *GameNode) Variation(m Move) *GameNode {
	for _, child := range n.variations {
		if child.move.Equals(m) {
			return child
		}
	}
	return nil
}

// AddVariation appends a new child reached by move m, with optional
// annotations, and returns it.
func (n *GameNode) AddVariation(m Move, opts AnnotationOpts) *GameNode {
	child := &GameNode{parent: n, hasMove: true, move: m}
	applyAnnotationOpts(child, opts)
	n.variations = append(n.variations, child)
	n.InvalidateBoard()
	return child
}

// AddMainVariation inserts a new child reached by move m at position 0,
// making it the mainline continuation, and returns it.
func (n *GameNode) AddMainVariation(m Move) *GameNode {
	child := &GameNode{parent: n, hasMove: true, move: m}
	n.variations = slices.Insert(n.variations, 0, child)
	n.InvalidateBoard()
	return child
}

// AddLine applies moves in order, each as the mainline continuation
// (variations[0]) of the previous, and returns the terminal child. The
// starting comment, if any, is attached to the first added child; the
// comment, if any, is attached to the last.
func (n *GameNode) AddLine(moves []Move, opts AnnotationOpts) *GameNode {
	cur := n
	var first *GameNode
	for _, m := range moves {
		cur = cur.AddVariation(m, AnnotationOpts{})
		if first == nil {
			first = cur
		}
	}
	if first != nil {
		first.startingComment = opts.StartingComment
		cur.comment = opts.Comment
		for _, nag := range opts.NAGs {
			cur.AddNAG(nag)
		}
	}
	return cur
}

// RemoveVariation splices child out of this node's variations and severs
// its parent pointer. Whether the detached subtree outlives the call
// depends on whether the caller retains a reference to it.
func (n *GameNode) RemoveVariation(child *GameNode) {
	idx := slices.Index(n.variations, child)
	if idx < 0 {
		return
	}
	n.variations = slices.Delete(n.variations, idx, idx+1)
	child.parent = nil
	n.InvalidateBoard()
}

// Promote swaps this node with its preceding sibling, moving it one step
// toward the front of its parent's variations.
func (n *GameNode) Promote() {
	if n.parent == nil {
		return
	}
	sibs := n.parent.variations
	idx := slices.Index(sibs, n)
	if idx <= 0 {
		return
	}
	sibs[idx-1], sibs[idx] = sibs[idx], sibs[idx-1]
}

// Demote swaps this node with its following sibling.
func (n *GameNode) Demote() {
	if n.parent == nil {
		return
	}
	sibs := n.parent.variations
	idx := slices.Index(sibs, n)
	if idx < 0 || idx >= len(sibs)-1 {
		return
	}
	sibs[idx], sibs[idx+1] = sibs[idx+1], sibs[idx]
}

// PromoteToMain moves this node to position 0 of its parent's variations,
// shifting the others back.
func (n *GameNode) PromoteToMain() {
	if n.parent == nil {
		return
	}
	sibs := n.parent.variations
	idx := slices.Index(sibs, n)
	if idx <= 0 {
		return
	}
	sibs = slices.Delete(sibs, idx, idx+1)
	n.parent.variations = slices.Insert(sibs, 0, n)
}

// CountNodes returns the number of nodes in the subtree rooted at n,
// including n itself.
func (n *GameNode) CountNodes() int {
	count := 1
	for _, child := range n.variations {
		count += child.CountNodes()
	}
	return count
}

// Ply returns the node's distance from the root (the root is ply 0).
func (n *GameNode) Ply() int {
	ply := 0
	for cur := n; cur.parent != nil; cur = cur.parent {
		ply++
	}
	return ply
}

// MoveNumber returns the standard move number for this node's ply:
// floor(ply/2) + 1.
func (n *GameNode) MoveNumber() int {
	return n.Ply()/2 + 1
}

func applyAnnotationOpts(n *GameNode, opts AnnotationOpts) {
	n.comment = opts.Comment
	n.startingComment = opts.StartingComment
	for _, nag := range opts.NAGs {
		n.AddNAG(nag)
	}
}
