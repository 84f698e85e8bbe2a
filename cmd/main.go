package main

import (
	"os"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
