package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/longkey1/gptc/internal/gptc"
	"github.com/longkey1/gptc/internal/gptc/config"
	"github.com/longkey1/gptc/internal/repl"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runInteractive starts the chat loop on the command's input; texts seed the history
func runInteractive(cmd *cobra.Command, cfg *config.Config, client gptc.Client, texts []string) error {
	conv := gptc.NewConversation(cfg.Model, texts)
	errOut := cmd.ErrOrStderr()

	if verbose {
		fmt.Fprintf(errOut, "Creating new conversation: %s\n", conv.ShortID())
		fmt.Fprintf(errOut, "Endpoint: %s\n", cfg.Endpoint)
	}

	reader := newLineReader(cmd.InOrStdin(), errOut)
	defer reader.Close()

	err := repl.Run(cmd.Context(), repl.Options{
		Reader:       reader,
		Out:          cmd.OutOrStdout(),
		Err:          errOut,
		Client:       client,
		Conversation: conv,
		Spinner:      isTerminal(errOut),
		Debug:        verbose,
	})
	if err != nil {
		return fmt.Errorf("interactive mode: %w", err)
	}
	return nil
}

// newLineReader uses line editing only when in is a real file
func newLineReader(in io.Reader, promptOut io.Writer) repl.LineReader {
	if f, ok := in.(*os.File); ok {
		return repl.NewLineReader(f, promptOut)
	}
	return repl.NewScannerReader(in, promptOut)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
