package main

import "beagle-pound/internal/cli"

func main() {
	cli.Execute()
}
