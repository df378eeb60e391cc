/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/longkey1/gptc/internal/gptc"
)

// runSingleShot sends one request built from texts and prints the reply
func runSingleShot(ctx context.Context, out io.Writer, client gptc.Client, model string, texts []string) error {
	conv := gptc.NewConversation(model, texts)

	if verbose {
		fmt.Fprintf(os.Stderr, "Conversation: %s\n", conv.ShortID())
		fmt.Fprintf(os.Stderr, "Model: %s\n", conv.Model)
		fmt.Fprintf(os.Stderr, "Messages: %d\n", conv.Len())
	}

	reply, err := gptc.Ask(ctx, client, conv)
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}

	fmt.Fprintln(out, reply)
	return nil
}
