package main

import "github.com/jdwpgo/jdwpgo/cmd"

func main() {
	cmd.Execute()
}
