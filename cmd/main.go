package main

import "HomoCure/cmd/command"

func main() {
	command.Execute()
}
