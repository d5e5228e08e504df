package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	filePrompt     = "Enter the name of the file you want to use: "
	continuePrompt = "<ENTER> to continue / <Q + ENTER> to quit: "
)

// game wires the grid to its console collaborators
type game struct {
	config   utils.Config
	in       *bufio.Reader
	out      io.Writer
	grid     *model.Grid
	pool     *model.GridPool
	loader   *model.Loader
	renderer *model.TerminalRenderer
	stats    *utils.Stats
}

// newGame allocates an all-dead grid and the collaborators described by config
func newGame(config utils.Config, in io.Reader, out io.Writer) *game {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &game{
		config:   config,
		in:       bufio.NewReader(in),
		out:      out,
		grid:     model.NewGrid(config.Rows, config.Cols),
		pool:     pool,
		loader:   model.NewLoader(config.Rows, config.Cols),
		renderer: model.NewTerminalRenderer(out, config.AliveGlyph, config.DeadGlyph, config.ClearCommand),
		stats:    utils.NewStats(),
	}
}

// readLine reads one console line without its terminator, cut to the input buffer size.
// ok is false once the input is exhausted.
func (g *game) readLine() (line string, ok bool, err error) {
	raw, err := g.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, errors.Wrap(err, "[readLine] failed to read console input")
	}
	if raw == "" && err != nil {
		return "", false, nil
	}

	line = strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
	if limit := g.config.InputBufferSize - 1; len(line) > limit {
		line = line[:limit]
	}
	return line, true, nil
}

// promptForFile asks for a pattern file name unless one was given up front
func (g *game) promptForFile(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	fmt.Fprintln(g.out, filePrompt)
	line, ok, err := g.readLine()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("[promptForFile] no file name given")
	}
	return line, nil
}

// load fills the grid from the pattern file
func (g *game) load(path string) error {
	path, err := g.promptForFile(path)
	if err != nil {
		return err
	}
	return g.loader.LoadFile(path, g.grid)
}

// isQuit reports whether a continue/quit line asks to stop; only the first character counts
func isQuit(line string) bool {
	return len(line) > 0 && (line[0] == 'q' || line[0] == 'Q')
}

// display draws the current generation and its status line
func (g *game) display(generation int) error {
	g.renderer.Clear()

	if err := g.renderer.Display(g.grid); err != nil {
		return errors.Wrapf(err, "[display] failed to render generation: %d", generation)
	}

	g.stats.Update(generation, g.grid.CountLivingCells())
	fmt.Fprintf(g.out, "\nGeneration: %d | Living: %d\t%s", generation, g.stats.Population, continuePrompt)
	return nil
}

// run loads the pattern at path (prompting when empty), then alternates
// display, input and advance until the user quits or input runs out
func (g *game) run(path string) error {
	if err := g.load(path); err != nil {
		return err
	}

	for generation := 1; ; generation++ {
		if err := g.display(generation); err != nil {
			return err
		}

		line, ok, err := g.readLine()
		if err != nil {
			return err
		}
		if !ok || isQuit(line) {
			return nil
		}

		g.grid.Advance(g.pool)
	}
}

// displaySummary prints how far the run got
func displaySummary(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "\nFinal stats: %d generations in %.1f seconds | Peak: %d | Avg Pop: %.1f\n",
		stats.Generation, stats.Runtime().Seconds(), stats.PeakPopulation, stats.AveragePopulation)
}
