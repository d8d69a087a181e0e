package main

import "github.com/cljtools/cljsel/cmd"

func main() {
	cmd.Execute()
}
