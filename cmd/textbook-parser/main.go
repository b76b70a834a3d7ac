package main

import "textbook-parser/internal/cli"

func main() {
	cli.Execute()
}
