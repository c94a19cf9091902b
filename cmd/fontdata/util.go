package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tdewolff/fontdata"
	"github.com/tdewolff/prompt"
)

func readFile(filename string) ([]byte, error) {
	var err error
	var r *os.File
	if filename == "" || filename == "-" {
		r = os.Stdin
	} else if r, err = os.Open(filename); err != nil {
		return nil, err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		r.Close()
		return nil, err
	} else if err := r.Close(); err != nil {
		return nil, err
	}
	return b, nil
}

func writeFile(filename string, force bool, b []byte) error {
	var err error
	var w io.WriteCloser
	if filename == "" || filename == "-" {
		w = os.Stdout
	} else {
		if _, err := os.Stat(filename); err == nil {
			if !force && !prompt.YesNo(fmt.Sprintf("%s already exists, overwrite?", filename), false) {
				return fmt.Errorf("file already exists")
			}
		}
		if w, err = os.Create(filename); err != nil {
			return err
		}
	}

	if _, err := w.Write(b); err != nil {
		w.Close()
		return err
	} else if err := w.Close(); err != nil {
		return err
	}
	return nil
}

func setVerbose(verbose bool) {
	if verbose {
		fontdata.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}
