package main

import (
	"github.com/krail/prototags/internal/cli"
)

func main() {
	cli.Execute()
}
