package main

import "divlog/internal/cli"

func main() {
	cli.Execute()
}
