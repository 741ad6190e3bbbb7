package main

import "quotesearch/cmd"

func main() {
	cmd.Execute()
}
