package main

import "github.com/gostonefire/adt/cmd"

func main() {
	cmd.Execute()
}
