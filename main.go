package main

import "github.com/rail44/primer/cmd"

func main() {
	cmd.Execute()
}
