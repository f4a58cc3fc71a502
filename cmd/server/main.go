package main

import "notekeeper/cmd/server/cmd"

func main() {
	cmd.Execute()
}
