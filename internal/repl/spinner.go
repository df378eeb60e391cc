package repl

import (
	"fmt"
	"io"
	"time"
)

// startSpinner displays a spinner animation on w until the returned func is called.
// The line is cleared before stop returns.
func startSpinner(w io.Writer) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		i := 0
		for {
			fmt.Fprintf(w, "\r%s Waiting for response...", spinners[i])
			i = (i + 1) % len(spinners)
			select {
			case <-done:
				fmt.Fprint(w, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}
