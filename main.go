package main

import "pancake/cmd"

func main() {
	cmd.Execute()
}
