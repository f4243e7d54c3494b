package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Globals are the flags shared by every command.
type Globals struct {
	Debug   bool `help:"Enable debug logging"`
	NoColor bool `help:"Disable coloured output" name:"no-color"`
	Workers int  `help:"Worker goroutines for parallel work (0 = one per CPU)" default:"0"`
}

func (g *Globals) Logger() *log.Logger {
	level := log.WarnLevel
	if g.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "handodds",
	})
}
