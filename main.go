package main

import "piggy/cmd"

func main() {
	cmd.Execute()
}
