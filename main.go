package main

import "tomato-manager/cmd"

func main() {
	cmd.Execute()
}
