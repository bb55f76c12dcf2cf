package main

import "github.com/KOFI-GYIMAH/uc-orb/internal/cli"

func main() {
	cli.Execute()
}
