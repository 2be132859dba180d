package main

import "github.com/aguilarcarboni/musical-grammar/cmd"

func main() {
	cmd.Execute()
}
