package main

import "schedule-sync/cmd"

func main() {
	cmd.Execute()
}
