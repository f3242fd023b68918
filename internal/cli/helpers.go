package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Interrupt is a context cancelled by SIGINT or SIGTERM. It remembers the
// signal so the exit path can name it.
type Interrupt struct {
	context.Context
	cancel context.CancelFunc
	sigCh  chan os.Signal

	mu  sync.Mutex
	sig os.Signal
}

// WatchInterrupts derives an Interrupt from parent and starts listening for
// SIGINT and SIGTERM. Call Stop to release the signal handler.
func WatchInterrupts(parent context.Context) *Interrupt {
	ctx, cancel := context.WithCancel(parent)
	in := &Interrupt{
		Context: ctx,
		cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}
	signal.Notify(in.sigCh, os.Interrupt, syscall.SIGTERM)
	go in.wait()
	return in
}

func (in *Interrupt) wait() {
	defer signal.Stop(in.sigCh)
	select {
	case sig := <-in.sigCh:
		in.trip(sig)
	case <-in.Done():
	}
}

// trip records sig, keeping the first one, and cancels the context.
func (in *Interrupt) trip(sig os.Signal) {
	in.mu.Lock()
	if in.sig == nil {
		in.sig = sig
	}
	in.mu.Unlock()
	in.cancel()
}

// Stop cancels the context without recording a signal.
func (in *Interrupt) Stop() {
	in.cancel()
}

// Signal returns the signal that cancelled the context, or nil.
func (in *Interrupt) Signal() os.Signal {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.sig
}

// Report prints which signal ended the run when err is an interruption
// caused by one. It reports whether a message was printed.
func (in *Interrupt) Report(w io.Writer, err error) bool {
	sig := in.Signal()
	if sig == nil || !isInterrupted(err) {
		return false
	}
	printSystemMessage(w, "Interrupted by %s.", signalName(sig))
	return true
}

func signalName(sig os.Signal) string {
	switch sig {
	case os.Interrupt:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return sig.String()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// isInterrupted reports whether err comes from a cancelled context, either
// directly or as the cause of a run fault.
func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}
