package main

import "github.com/douhashi/mushi/cmd"

func main() {
	cmd.Execute()
}
