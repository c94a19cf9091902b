package main

import (
	"fmt"

	"github.com/tdewolff/fontdata/compat"
)

type Trig struct {
	Angle  int `short:"a" desc:"Angle in degrees."`
	Length int `short:"l" desc:"Length to scale by, at most 32767 in magnitude." default:"32767"`
}

func (cmd *Trig) Run() error {
	sin, err := compat.Sin(cmd.Angle, cmd.Length)
	if err != nil {
		return err
	}
	cos, err := compat.Cos(cmd.Angle, cmd.Length)
	if err != nil {
		return err
	}
	fmt.Printf("sin(%d)*%d = %d\n", cmd.Angle, cmd.Length, sin)
	fmt.Printf("cos(%d)*%d = %d\n", cmd.Angle, cmd.Length, cos)
	return nil
}
