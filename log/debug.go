package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// DebugEnvVar enables debug tracing when set to "1".
const DebugEnvVar = "SN_DEBUG"

var (
	// DebugEnabled is true when SN_DEBUG=1 was set at InitDebug.
	DebugEnabled bool
	// DebugLog receives traces. It discards output unless debugging is on.
	DebugLog *log.Logger

	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "sidenav-debug.log")

// DebugFileName returns the path of the debug log.
func DebugFileName() string {
	return debugLogFileName
}

// InitDebug opens the debug log when SN_DEBUG=1. The file is truncated on
// every start.
func InitDebug() {
	DebugEnabled = os.Getenv(DebugEnvVar) == "1"
	DebugLog = log.New(io.Discard, "", 0)
	if !DebugEnabled {
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		return
	}
	debugLogFile = f
	DebugLog = log.New(f, "DEBUG:", log.Ltime|log.Lmicroseconds)
	DebugLog.Printf("tracing to %s", debugLogFileName)
}

// CloseDebug dumps the frame profile and closes the debug log.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	DebugLog.Print(profiler.Report())
	_ = debugLogFile.Close()
	debugLogFile = nil
	DebugLog = log.New(io.Discard, "", 0)
	fmt.Println("wrote debug logs to " + debugLogFileName)
}

// Debug writes an untagged trace line.
func Debug(format string, v ...interface{}) {
	trace("", format, v...)
}

// LayoutTrace traces measure and layout passes.
func LayoutTrace(format string, v ...interface{}) {
	trace("[LAYOUT] ", format, v...)
}

// RenderTrace traces the compositor. component is the panel or widget name.
func RenderTrace(component, format string, v ...interface{}) {
	trace("[RENDER:"+component+"] ", format, v...)
}

// InputTrace traces pointer arbitration, pan gestures and key handling.
func InputTrace(format string, v ...interface{}) {
	trace("[INPUT] ", format, v...)
}

func trace(tag, format string, v ...interface{}) {
	if !DebugEnabled || DebugLog == nil {
		return
	}
	DebugLog.Printf(tag+format, v...)
}
