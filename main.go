// Daycheck - a personal attendance, schedule, todo, memo and day-counter
// tracker with a year-view calendar, persisted entirely on the local machine.
package main

import (
	"os"

	"github.com/daycheck/daycheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
