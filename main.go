package main

import "CipherLabs/cmd"

func main() {
	cmd.Execute()
}
