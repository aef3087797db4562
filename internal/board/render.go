package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// RenderOptions controls Render output.
type RenderOptions struct {
	// Colour enables ANSI colours for pieces and highlighted squares.
	Colour bool

	// Symbols draws Unicode chess symbols instead of FEN letters.
	Symbols bool

	// Highlight marks squares, e.g. the legal destinations of a selected
	// piece. Highlighted pieces are bracketed so captures show without colour.
	Highlight []chess.Square
}

// Render writes a diagram of the board with rank 8 at the top.
func (b *Board) Render(w io.Writer, opts RenderOptions) error {
	white := color.New(color.FgHiWhite, color.Bold)
	black := color.New(color.FgHiRed, color.Bold)
	mark := color.New(color.FgBlack, color.BgHiYellow)
	for _, c := range []*color.Color{white, black, mark} {
		if opts.Colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	highlighted := make(map[chess.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		highlighted[sq] = true
	}

	var sb strings.Builder
	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		sb.WriteString("   +---+---+---+---+---+---+---+---+\n")
		fmt.Fprintf(&sb, " %s |", rank)
		for file := chess.FileA; file <= chess.FileH; file++ {
			sq := chess.Square{File: file, Rank: rank}
			cell := " "
			p, occupied := b.PieceAt(sq)
			if occupied {
				if opts.Symbols {
					cell = p.Symbol()
				} else {
					cell = string(p.FEN())
				}
				if p.Colour == chess.White {
					cell = white.Sprint(cell)
				} else {
					cell = black.Sprint(cell)
				}
			} else if highlighted[sq] {
				cell = "*"
			}

			switch {
			case highlighted[sq] && occupied:
				fmt.Fprintf(&sb, "%s|", mark.Sprintf("[%s]", cell))
			case highlighted[sq]:
				fmt.Fprintf(&sb, "%s|", mark.Sprintf(" %s ", cell))
			default:
				fmt.Fprintf(&sb, " %s |", cell)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   +---+---+---+---+---+---+---+---+\n")
	sb.WriteString("     a   b   c   d   e   f   g   h\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns an uncoloured diagram of the board.
func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb, RenderOptions{})
	return sb.String()
}
