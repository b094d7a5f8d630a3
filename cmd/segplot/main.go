package main

import "github.com/philipparndt/segplot/cmd"

func main() {
	cmd.Execute()
}
