package main

import "github.com/mcoot/monopoly-go/internal/cli"

func main() {
	cli.Execute()
}
