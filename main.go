package main

import "team-inventory/cmd"

func main() {
	cmd.Execute()
}
