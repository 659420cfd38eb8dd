package main

import "classmerge/internal/cli"

func main() {
	cli.Execute()
}
