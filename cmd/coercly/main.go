package main

import (
	"os"

	"github.com/viant/coercly/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
