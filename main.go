package main

import "github.com/openzeppelin/ui-builder-cli/cmd"

func main() {
	cmd.Execute()
}
