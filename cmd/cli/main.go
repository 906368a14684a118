package main

import "prontuario/internal/cli"

func main() {
	cli.Execute()
}
