package main

import (
	"os"

	"github.com/concordlabs/concord/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
