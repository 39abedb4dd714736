package main

import "github.com/gnames/moviedb/cmd"

func main() {
	cmd.Execute()
}
