package main

import (
	"fmt"
	"path/filepath"

	"github.com/tdewolff/fontdata"
)

type Match struct {
	Verbose    bool     `short:"v" desc:"Log debug information."`
	Descriptor string   `short:"d" desc:"Serialized font descriptor to look up."`
	DPI        float64  `desc:"Resolution in dots per inch." default:"72"`
	Inputs     []string `index:"*" desc:"Input font files."`
}

func (cmd *Match) Run() error {
	setVerbose(cmd.Verbose)

	fd, err := fontdata.Parse(cmd.Descriptor)
	if err != nil {
		return err
	}

	collection := fontdata.NewCollection()
	files := []string{}
	for _, input := range cmd.Inputs {
		b, err := readFile(input)
		if err != nil {
			return err
		}
		if _, err := collection.Add(b, 0); err != nil {
			Warning.Printf("%s: %v", filepath.Base(input), err)
			continue
		}
		files = append(files, input)
	}

	match, err := collection.Match(fd)
	if err != nil {
		return err
	} else if match.Style != fd.Style {
		Warning.Printf("%s is not available, using %s", fd.Style, match.Style)
	}
	for i, desc := range collection.Descriptors() {
		if desc.Name == match.Name && desc.Style == match.Style {
			fmt.Printf("File:   %s\n", files[i])
			break
		}
	}

	face, err := collection.Face(match, cmd.DPI)
	if err != nil {
		return err
	}
	defer face.Close()

	metrics := face.Metrics()
	fmt.Printf("Match:  %s\n", match)
	fmt.Printf("Height: %.2f px\n", float64(metrics.Height)/64.0)
	fmt.Printf("Ascent: %.2f px\n", float64(metrics.Ascent)/64.0)
	return nil
}
