package main

import "github.com/emberwood/stay/internal/cli"

func main() {
	cli.Execute()
}
