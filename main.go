package main

import "github.com/theirongolddev/partyplan/cmd"

func main() {
	cmd.Execute()
}
