package main

import "github.com/lepinkainen/ytshelf/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
