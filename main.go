package main

import "github.com/julienpequegnot/tfclass/cmd"

func main() {
	cmd.Execute()
}
