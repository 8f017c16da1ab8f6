package main

import "github.com/theirongolddev/taxdiff/cmd"

func main() {
	cmd.Execute()
}
