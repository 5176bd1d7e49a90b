package log

import (
	"io"
	"log"
	"os"
	"strings"
)

var (
	DebugLogger   *log.Logger
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
	FatalLogger   *log.Logger
)

// Debug reports whether DebugLogger writes anywhere.
var Debug bool

func init() {
	switch strings.ToLower(os.Getenv("UGLYMAX_DEBUG")) {
	case "1", "true", "yes":
		Debug = true
	}

	var debugOut io.Writer = io.Discard
	if Debug {
		debugOut = os.Stderr
	}

	DebugLogger = log.New(debugOut, "DEBUG: ", log.Lmsgprefix)
	InfoLogger = log.New(os.Stderr, "INFO:  ", log.Lmsgprefix)
	WarningLogger = log.New(os.Stderr, "WARN:  ", log.Lmsgprefix)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Lmsgprefix)
	FatalLogger = log.New(os.Stderr, "FATAL: ", log.Lmsgprefix)
}
