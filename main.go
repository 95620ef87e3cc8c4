package main

import "github.com/nikogura/namescore/cmd"

func main() {
	cmd.Execute()
}
