package main

import (
	"resumatic/cmd"
)

func main() {
	cmd.Execute()
}
