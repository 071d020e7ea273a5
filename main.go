package main

import "ridedemo/cmd"

func main() {
	cmd.Execute()
}
