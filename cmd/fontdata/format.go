package main

import (
	"fmt"

	"github.com/tdewolff/fontdata"
)

type Format struct {
	Name   string `short:"n" desc:"Face name, optionally as foundry-face."`
	Size   int    `short:"s" desc:"Height in points." default:"12"`
	Bold   bool   `short:"b" desc:"Bold style."`
	Italic bool   `short:"i" desc:"Italic style."`
	Locale string `short:"l" desc:"Locale, eg. en_US."`
}

func (cmd *Format) Run() error {
	fd, err := fontdata.New(cmd.Name, cmd.Size, fontdata.StyleFromFlags(cmd.Bold, cmd.Italic))
	if err != nil {
		return err
	}
	fmt.Println(fd)

	if cmd.Locale != "" {
		fd.SetLocale(cmd.Locale)
		tag, err := fd.LanguageTag()
		if err != nil {
			Warning.Println(err)
		} else {
			fmt.Printf("Locale: %s (%s)\n", fd.Locale(), tag)
		}
	}
	return nil
}
