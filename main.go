package main

import "yukari-engine/cmd"

func main() {
	cmd.Execute()
}
