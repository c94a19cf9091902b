package main

import (
	"fmt"

	"github.com/tdewolff/fontdata"
)

type Parse struct {
	Verbose bool   `short:"v" desc:"Log ignored platform fields."`
	Input   string `index:"0" desc:"Serialized font descriptor, eg. 1|Arial|12|1|GO|1|"`
}

func (cmd *Parse) Run() error {
	setVerbose(cmd.Verbose)

	fd, err := fontdata.Parse(cmd.Input)
	if err != nil {
		return err
	}
	fmt.Printf("Name:   %s\n", fd.Name)
	fmt.Printf("Height: %d pt\n", fd.Height)
	fmt.Printf("Style:  %s (%d)\n", fd.Style, int(fd.Style))
	fmt.Printf("Hash:   0x%08X\n", fd.Hash())
	fmt.Printf("String: %s\n", fd)
	return nil
}
