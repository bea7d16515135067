package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/pass-alert/strength"
)

var (
	red    = ansi.ColorFunc("red+b")
	yellow = ansi.ColorFunc("yellow+b")
	green  = ansi.ColorFunc("green+b")
	cyan   = ansi.ColorFunc("cyan")
	faint  = ansi.ColorFunc("black+h")
)

func categoryColor(c strength.Category) func(string) string {
	switch c {
	case strength.VeryWeak, strength.Weak:
		return red
	case strength.Medium:
		return yellow
	default:
		return green
	}
}

func disableColors(disable bool) {
	if disable {
		ansi.DisableColors(true)
	}
}
