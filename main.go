package main

import "github.com/tanekelly/overline-zebar/cmd"

func main() {
	cmd.Execute()
}
