package internal

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"
)

// Write the board as text, one line per row, '*' for filled pixels and '-'
// for empty ones.
func PrintBoard(w io.Writer, board Board, shape Shape, colors bool) error {
	board.validate(shape)
	au := aurora.NewAurora(colors)
	filled := au.Green("*").String()
	empty := au.Faint("-").String()

	out := bufio.NewWriter(w)
	for y := 0; y < shape.Height; y++ {
		for x := 0; x < shape.Width; x++ {
			if board[x+y*shape.Width] {
				out.WriteString(filled)
			} else {
				out.WriteString(empty)
			}
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}
