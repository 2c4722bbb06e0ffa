package main

import "github.com/Connerlevi/evolve/cmd"

func main() {
	cmd.Execute()
}
