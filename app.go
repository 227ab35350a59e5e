package main

import "github.com/tmori/gitworklog/cmd"

func main() {
	cmd.Run()
}
