package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"othello/game"
)

const (
	cellSize = 48
	margin   = 24
	boardPx  = cellSize * game.BoardSize
)

// SVG draws the board as an SVG image with row and column labels.
func SVG(w io.Writer, b game.Board) {
	size := boardPx + 2*margin
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#f4f1e8")
	canvas.Rect(margin, margin, boardPx, boardPx, "fill:#2e7d32;stroke:#1b3d1d;stroke-width:2")

	for i := 1; i < game.BoardSize; i++ {
		offset := margin + i*cellSize
		canvas.Line(margin, offset, margin+boardPx, offset, "stroke:#1b3d1d")
		canvas.Line(offset, margin, offset, margin+boardPx, "stroke:#1b3d1d")
	}

	label := "font-family:monospace;font-size:14px;text-anchor:middle"
	for i := 0; i < game.BoardSize; i++ {
		centre := margin + i*cellSize + cellSize/2
		canvas.Text(centre, margin-8, strconv.Itoa(i+1), label)
		canvas.Text(margin/2, centre+5, string(rune('A'+i)), label)
	}

	radius := cellSize/2 - 5
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			cx := margin + y*cellSize + cellSize/2
			cy := margin + x*cellSize + cellSize/2
			switch b.At(x, y) {
			case game.CellBlack:
				canvas.Circle(cx, cy, radius, "fill:#111111")
			case game.CellWhite:
				canvas.Circle(cx, cy, radius, "fill:#fafafa;stroke:#111111")
			}
		}
	}
	canvas.End()
}

// WriteSVGFile replaces the file at path with an SVG snapshot of the board.
func WriteSVGFile(path string, b game.Board) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create board snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close board snapshot: %w", cerr)
		}
	}()

	// svgo drops write errors, so the image is buffered and written in one call.
	w := bufio.NewWriter(f)
	SVG(w, b)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write board snapshot: %w", err)
	}
	return nil
}
