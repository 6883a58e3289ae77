package main

import (
	"fmt"
	"os"
)

const (
	AppName    = "Periodic Table Tutor"
	AppID      = "com.periodictutor.app"
	AppVersion = "1.0.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
