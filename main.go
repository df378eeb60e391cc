package main

import "github.com/longkey1/gptc/cmd"

func main() {
	cmd.Execute()
}
