package main

import "basemedia/cmd"

func main() {
	cmd.Execute()
}
