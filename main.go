package main

import "zotmcp/cmd"

func main() {
	cmd.Execute()
}
