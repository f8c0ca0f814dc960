package main

import (
	"fmt"
	"os"
	"taskboard/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("taskboard run into an error: %s", err)
		os.Exit(1)
	}
}
