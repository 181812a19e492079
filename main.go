package main

import (
	"os"

	"github.com/abhisek/genai-course/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
