package main

import "wordgen/internal/cli"

func main() {
	cli.Execute()
}
