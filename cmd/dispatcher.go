package cmd

import (
	"fmt"
	"os"
)

// MainDispatcher is called if run as "gtleap <applet>"
func MainDispatcher(args []string) int {
	if len(args) == 0 {
		_, _ = fmt.Println("Available applets: tailocal,leaps,offset,taistamp")
		return 1
	}
	return Run(args[0], args[1:])
}

// Run starts the named applet. It returns the process exit code.
func Run(name string, args []string) int {
	switch name {
	case "tailocal":
		return TAILocalRun(args)
	case "leaps":
		return LeapsRun(args)
	case "offset":
		return OffsetRun(args)
	case "taistamp":
		return TAIStampRun(args)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		return 1
	}
}
