package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// TerminalRenderer draws the interior of a grid as rows of glyphs
type TerminalRenderer struct {
	out          io.Writer
	aliveGlyph   string
	deadGlyph    string
	clearCommand string
}

// NewTerminalRenderer returns a renderer writing to out. An empty
// clearCommand turns Clear into a no-op.
func NewTerminalRenderer(out io.Writer, aliveGlyph, deadGlyph, clearCommand string) *TerminalRenderer {
	return &TerminalRenderer{
		out:          out,
		aliveGlyph:   aliveGlyph,
		deadGlyph:    deadGlyph,
		clearCommand: clearCommand,
	}
}

// Display renders the grid interior, one line per row. The border is never drawn.
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	for row := 1; row <= g.Rows(); row++ {
		for col := 1; col <= g.Cols(); col++ {
			if g.IsAlive(row, col) {
				w.WriteString(r.aliveGlyph)
			} else {
				w.WriteString(r.deadGlyph)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	if r.clearCommand == "" {
		return
	}

	cmd := exec.Command(r.clearCommand)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
