package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/tdewolff/fontdata"
)

type Info struct {
	Quiet   bool     `short:"q" desc:"Suppress output except for errors."`
	Force   bool     `short:"f" desc:"Force overwriting existing files."`
	Verbose bool     `short:"v" desc:"Log debug information."`
	Index   int      `short:"i" desc:"Index into font collection (used with TTC or OTC)."`
	Size    int      `short:"z" desc:"Height in points of the descriptors." default:"12"`
	Output  string   `short:"o" desc:"Output file name for the descriptors, one per line."`
	Inputs  []string `index:"*" desc:"Input font files, including AFM metrics files."`
}

func (cmd *Info) Run() error {
	if cmd.Quiet {
		Warning = log.New(io.Discard, "", 0)
	}
	setVerbose(cmd.Verbose)

	if len(cmd.Inputs) == 0 {
		return fmt.Errorf("input file names not set")
	}

	sb := strings.Builder{}
	for _, input := range cmd.Inputs {
		b, err := readFile(input)
		if err != nil {
			return err
		}
		var fd *fontdata.FontData
		if strings.EqualFold(filepath.Ext(input), ".afm") {
			fd, err = fontdata.DescribeAFM(b, cmd.Size)
		} else {
			fd, err = fontdata.Describe(b, cmd.Index, cmd.Size)
		}
		if err != nil {
			Error.Printf("%s: %v", filepath.Base(input), err)
			continue
		}
		sb.WriteString(fd.String())
		sb.WriteByte('\n')
		if !cmd.Quiet && cmd.Output != "" {
			fmt.Printf("%v:  %v %v\n", filepath.Base(input), fd.Name, fd.Style)
		}
	}
	if sb.Len() == 0 {
		return fmt.Errorf("no font could be described")
	}
	return writeFile(cmd.Output, cmd.Force, []byte(sb.String()))
}
