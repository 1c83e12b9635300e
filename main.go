package main

import (
	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"

	"droscher.com/DrinkMenu/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Drink Menu"), kong.Description("Drink Menu serves a bar's beer, liquor and mixed drink menu."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
