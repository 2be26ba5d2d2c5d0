package main

import (
	"github.com/mcoot/dategetter/internal/cli"
)

func main() {
	cli.Execute()
}
