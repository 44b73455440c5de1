package main

import "github.com/minhvu92/termpilot/cmd"

func main() {
	cmd.Execute()
}
