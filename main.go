package main

import "github.com/pulseview/cli/internal/cmd"

func main() {
	cmd.Execute()
}
