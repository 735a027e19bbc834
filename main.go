package main

import "github.com/kamusis/launchkit/cmd"

func main() {
	cmd.Execute()
}
