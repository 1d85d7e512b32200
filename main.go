package main

import (
	"cpu-scheduler-sim/cmd"
)

func main() {
	cmd.Execute()
}
