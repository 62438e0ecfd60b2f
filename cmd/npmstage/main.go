package main

import (
	"os"

	"github.com/arthur-debert/npmstage/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCmd(), os.Args[1:], os.Stderr))
}
