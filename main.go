package main

import (
	"flag"
	"fmt"
	"os"

	"parkpulse/internal/di"
	"parkpulse/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the yaml config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "log to stderr in addition to the log files")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "parkpulse: %s\n", err)
		os.Exit(1)
	}
}
