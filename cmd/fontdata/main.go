package main

import (
	"log"
	"os"

	"github.com/tdewolff/argp"
)

var (
	Error   *log.Logger
	Warning *log.Logger
)

func main() {
	Error = log.New(os.Stderr, "ERROR: ", 0)
	Warning = log.New(os.Stderr, "WARNING: ", 0)

	cmd := argp.New("Command line toolkit for font descriptors")
	cmd.AddCmd(&Parse{}, "parse", "Parse a serialized font descriptor")
	cmd.AddCmd(&Format{}, "format", "Create a serialized font descriptor")
	cmd.AddCmd(&Info{}, "info", "Describe font files")
	cmd.AddCmd(&Match{}, "match", "Find the font file matching a font descriptor")
	cmd.AddCmd(&Trig{}, "trig", "Fixed-point sine and cosine")
	cmd.Parse()
}
