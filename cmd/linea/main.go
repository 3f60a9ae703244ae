package main

import "github.com/mcoot/linea/internal/cli"

func main() {
	cli.Execute()
}
