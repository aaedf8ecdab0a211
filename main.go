package main

import "price-sync/cmd"

func main() {
	cmd.Execute()
}
