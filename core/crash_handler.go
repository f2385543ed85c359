package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu       sync.Mutex
	crashCleanup  func()
	crashReporter func(r any)
)

// SetCrashCleanup registers the terminal/window teardown run before the trace is printed
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// SetCrashReporter registers an external sink (e.g. Sentry) that receives the panic value
func SetCrashReporter(fn func(r any)) {
	crashMu.Lock()
	crashReporter = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the screen and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup, report := crashCleanup, crashReporter
	crashMu.Unlock()

	if cleanup != nil {
		cleanup()
	}
	if report != nil {
		report(r)
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mSKII CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
