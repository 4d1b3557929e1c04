package main

import "github.com/aalvaropc/advent/internal/cli"

func main() {
	cli.Execute()
}
