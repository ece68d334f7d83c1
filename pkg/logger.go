package pkg

import (
	"log"
	"os"
)

type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelErrOnly
	LogLevelDebug
)

var log_level = LogLevelErrOnly

func SetLogLevel(level LogLevel) { log_level = level }

var (
	info_logger  = log.New(os.Stdout, "INFO: ", log.Lshortfile|log.LstdFlags)
	warn_logger  = log.New(os.Stdout, "WARN: ", log.Lshortfile|log.LstdFlags)
	debug_logger = log.New(os.Stdout, "DEBUG: ", log.Lshortfile|log.LstdFlags)
	error_logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile|log.LstdFlags)
	fatal_logger = log.New(os.Stderr, "FATAL: ", log.Lshortfile|log.LstdFlags)
)

func InfoLog(v ...any) {
	if log_level >= LogLevelDebug {
		info_logger.Println(v...)
	}
}

func WarnLog(v ...any) {
	if log_level >= LogLevelDebug {
		warn_logger.Println(v...)
	}
}

func DebugLog(v ...any) {
	if log_level >= LogLevelDebug {
		debug_logger.Println(v...)
	}
}

func ErrorLog(v ...any) {
	if log_level >= LogLevelErrOnly {
		error_logger.Println(v...)
	}
}

func FatalLog(v ...any) {
	if log_level == LogLevelNone {
		os.Exit(1)
	}
	fatal_logger.Fatalln(v...)
}
