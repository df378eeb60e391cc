// Package gptc provides the core types of the chat client: the conversation
// that is built up turn by turn, the response returned by the endpoint, and
// the Client interface that transports implement.
package gptc

import (
	"context"
	"time"
)

// Choice is one candidate reply returned by the model.
type Choice struct {
	Message Message `json:"message"`
}

// Response represents a chat-completion response body
type Response struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"` // Unix seconds
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

// CreatedAt returns the creation timestamp of the response.
func (r *Response) CreatedAt() time.Time {
	return time.Unix(r.Created, 0)
}

// Client sends a conversation to a chat-completion endpoint.
//
// Example usage:
//
//	client := openai.NewClient(cfg.Endpoint, apiKey)
//	resp, err := client.Send(ctx, conv)
//	reply, err := gptc.ExtractReply(resp)
type Client interface {
	// Send issues a single request for the given conversation and returns the parsed response.
	Send(ctx context.Context, conv *Conversation) (*Response, error)
}

// ExtractReply returns the content of the first choice in the response.
func ExtractReply(resp *Response) (string, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// Ask sends the conversation and, on success, appends the reply as an
// assistant turn. On failure the conversation is left unchanged.
func Ask(ctx context.Context, client Client, conv *Conversation) (string, error) {
	resp, err := client.Send(ctx, conv)
	if err != nil {
		return "", err
	}
	reply, err := ExtractReply(resp)
	if err != nil {
		return "", err
	}
	conv.AppendAssistantTurn(reply)
	return reply, nil
}
