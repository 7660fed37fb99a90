package main

import "github.com/dzjyyds666/iniq/cmd"

func main() {
	cmd.Execute()
}
