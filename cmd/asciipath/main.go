package main

import "github.com/vinser/asciipath/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
