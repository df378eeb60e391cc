package cmd

import (
	"github.com/longkey1/gptc/internal/gptc/config"
	"github.com/longkey1/gptc/internal/openai"
)

// newClient creates a chat-completion client from the configuration
func newClient(cfg *config.Config, apiKey string) *openai.Client {
	client := openai.NewClient(cfg.Endpoint, apiKey)
	client.SetDebug(verbose)
	return client
}
