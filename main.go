package main

import (
	"github.com/clockworkempire/hostnet/cmd"
	_ "github.com/clockworkempire/hostnet/cmd/commands"
)

func main() {
	cmd.Execute()
}
