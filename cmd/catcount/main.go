package main

import "github.com/aalvaropc/catcount/internal/cli"

func main() {
	cli.Execute()
}
