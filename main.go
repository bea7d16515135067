package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/pivotal-cf/pass-alert/commands"
)

func main() {
	// settings in .env never override the real environment
	_ = godotenv.Load()

	parser := flags.NewParser(&commands.PassAlert, flags.HelpFlag|flags.PrintErrors)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
