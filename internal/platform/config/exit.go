package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitOutput io.Writer = os.Stderr
	exit                 = os.Exit
)

// Exitf writes a formatted message to stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitOutput, format+"\n", args...)
	exit(1)
}
