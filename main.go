package main

import (
	"os"
	"path/filepath"

	"github.com/karasz/gtleap/cmd"
)

func main() {
	_, calledAs := filepath.Split(os.Args[0])
	args := os.Args[1:]
	switch calledAs {
	case "tailocal", "leaps", "offset", "taistamp":
		os.Exit(cmd.Run(calledAs, args))
	default:
		os.Exit(cmd.MainDispatcher(args))
	}
}
