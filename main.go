package main

import "entra-sync/cmd"

func main() {
	cmd.Execute()
}
