package main

import "translation-sheet/cmd"

func main() {
	cmd.Execute()
}
