package main

import "github.com/arpele/tempo/cmd"

func main() {
	cmd.Execute()
}
