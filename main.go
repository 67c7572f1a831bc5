package main

import "github.com/papapumpkin/bbdl/cmd"

func main() {
	cmd.Execute()
}
