package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashRestore func()
	crashOut     io.Writer = os.Stderr
	crashExit              = os.Exit
)

// SetCrashRestore registers the terminal restoration run before a crash report is printed
// Passing nil unregisters it
func SetCrashRestore(fn func()) {
	crashMu.Lock()
	crashRestore = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	crashMu.Unlock()

	// Restore terminal to sane state before anything is printed
	if restore != nil {
		restore()
	}

	// Use \r\n in case the terminal is still in raw mode
	fmt.Fprintf(crashOut, "\r\n\x1b[31mLURKDASH CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	if f, ok := crashOut.(*os.File); ok {
		f.Sync()
	}

	crashExit(1)
}

// Guard wraps an error-returning function with panic recovery, for errgroup members
// Use it instead of passing fn directly so a crashing goroutine restores the terminal
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
