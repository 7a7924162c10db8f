// Package svgboard renders a chess position to an SVG diagram, the way the
// wider notnil/chess-derived ecosystem does it with ajstarks/svgo: a pure
// function over an owned board snapshot, safe to call from any number of
// goroutines at once since it touches no shared state.
package svgboard

import (
	"bytes"
	"strconv"

	svg "github.com/ajstarks/svgo"

	chess "github.com/zilin/pgn-chess-tree"
)

const (
	defaultSquareSize = 45
	boardSquares      = 8
)

var (
	lightSquareColor = "#f0d9b5"
	darkSquareColor  = "#b58863"
)

// Option configures Render.
type Option func(*renderOpts)

type renderOpts struct {
	squareSize int
	flipped    bool
}

// SquareSize sets the side length of one square in pixels (default 45).
func SquareSize(px int) Option {
	return func(o *renderOpts) { o.squareSize = px }
}

// Flipped renders the board from Black's point of view.
func Flipped() Option {
	return func(o *renderOpts) { o.flipped = true }
}

// Render draws b as an SVG document and returns the markup as a string. It
// draws from an owned copy of b, so the caller's board is never mutated.
func Render(b *chess.Board, opts ...Option) string {
	board := b.Copy()

	o := renderOpts{squareSize: defaultSquareSize}
	for _, f := range opts {
		f(&o)
	}

	side := o.squareSize * boardSquares
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(side, side)

	for rank := 0; rank < boardSquares; rank++ {
		for file := 0; file < boardSquares; file++ {
			x, y := cellOrigin(file, rank, o)
			color := lightSquareColor
			if (file+rank)%2 == 1 {
				color = darkSquareColor
			}
			canvas.Rect(x, y, o.squareSize, o.squareSize, "fill:"+color)
		}
	}

	for sq := chess.Square(0); sq < 64; sq++ {
		p := board.PieceAt(sq)
		if p == chess.NoPiece {
			continue
		}
		file, rank := int(sq.File()), int(sq.Rank())
		x, y := cellOrigin(file, rank, o)
		cx := x + o.squareSize/2
		cy := y + o.squareSize/2 + o.squareSize/3
		canvas.Text(cx, cy, p.Unicode(), "text-anchor:middle;font-size:"+fontSize(o.squareSize))
	}

	canvas.End()
	return buf.String()
}

// cellOrigin returns the top-left pixel coordinate of the square at
// (file, rank), accounting for board orientation.
func cellOrigin(file, rank int, o renderOpts) (int, int) {
	col, row := file, boardSquares-1-rank
	if o.flipped {
		col, row = boardSquares-1-file, rank
	}
	return col * o.squareSize, row * o.squareSize
}

func fontSize(squareSize int) string {
	return strconv.Itoa(squareSize * 2 / 3)
}
