package main

import (
	"fmt"
	"os"

	"github.com/ayushi-devx/Virtual-Assistant/assistantservice"
)

func main() {
	if err := assistantservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
