package main

import "airbluectl/cmd"

func main() {
	cmd.Execute()
}
