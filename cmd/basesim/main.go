// Command basesim runs the balloon model without a window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	root, a := newRootCmd()
	if err := root.Execute(); err != nil {
		if a.log != nil {
			a.log.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
