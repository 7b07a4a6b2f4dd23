package main

import (
	"github.com/letsssgooo/botapi/internal/cli"
)

func main() {
	cli.Execute()
}
