package main

import "stock-reconciler/cmd"

func main() {
	cmd.Execute()
}
