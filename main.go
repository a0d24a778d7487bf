package main

import "github.com/lumenlang/lumenc/cmd"

func main() {
	cmd.Execute()
}
