package main

import "github.com/loomcollapse/loomcollapse/cmd"

func main() {
	cmd.Execute()
}
