package main

import "recipe-viewer/cmd"

func main() {
	cmd.Execute()
}
