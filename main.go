package main

import "github.com/lepinkainen/doinote/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
