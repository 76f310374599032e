// Package main is the entry point for pikescope.
package main

import "github.com/mouse-blink/pikescope/cmd"

func main() {
	cmd.Execute()
}
