package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Board is the read side of a session.
type Board interface {
	Size() int
	OccupantAt(row, col int) (entity.Mark, bool)
}

type Renderer struct {
	out *termenv.Output
}

// New - the color profile is detected from w unless one is passed in opts.
func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Board - draws the grid. Empty cells show their "row,col" coordinates.
func (that *Renderer) Board(board Board) error {
	size := board.Size()
	width := len(fmt.Sprintf("%d,%d", size-1, size-1))

	separator := strings.Repeat("-", width)
	for i := 1; i < size; i++ {
		separator += "+" + strings.Repeat("-", width)
	}

	var sb strings.Builder
	for row := 0; row < size; row++ {
		if row > 0 {
			sb.WriteString(separator)
			sb.WriteByte('\n')
		}

		for col := 0; col < size; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}

			mark, _ := board.OccupantAt(row, col)
			sb.WriteString(that.cell(mark, row, col, width))
		}

		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

// Outcome - announces the winner, or a tie for EmptyCell.
func (that *Renderer) Outcome(winner entity.Mark) error {
	message := "It's a tie!"
	if winner.IsPlayer() {
		message = that.mark(winner) + " wins!"
	}

	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("failed to render outcome: %w", err)
	}

	return nil
}

func (that *Renderer) cell(mark entity.Mark, row, col, width int) string {
	if !mark.IsPlayer() {
		coords := center(fmt.Sprintf("%d,%d", row, col), width)
		return that.out.String(coords).Faint().String()
	}

	left := (width - 1) / 2

	return strings.Repeat(" ", left) + that.mark(mark) + strings.Repeat(" ", width-1-left)
}

func (that *Renderer) mark(mark entity.Mark) string {
	color := that.out.Color("12")
	if mark == entity.PlayerX {
		color = that.out.Color("9")
	}

	return that.out.String(mark.Label()).Foreground(color).Bold().String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}

	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
