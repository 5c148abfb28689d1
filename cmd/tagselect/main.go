package main

import (
	"github.com/pluqqy/tagselect/cmd/commands"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	commands.Execute(version)
}
