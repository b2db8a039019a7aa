package main

import "github.com/openqasm/qsim/internal/cli"

func main() {
	cli.Execute()
}
