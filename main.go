package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	g := newGame(config, os.Stdin, os.Stdout)
	if err = g.run(path); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %v\n", err)
		os.Exit(1)
	}
	displaySummary(os.Stdout, g.stats)
}
