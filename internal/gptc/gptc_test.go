package gptc

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNewConversation(t *testing.T) {
	tests := []struct {
		name  string
		model string
		texts []string
	}{
		{
			name:  "no texts",
			model: "gpt-4",
			texts: nil,
		},
		{
			name:  "single text",
			model: "gpt-4",
			texts: []string{"Hello"},
		},
		{
			name:  "multiple texts keep order",
			model: "gpt-3.5-turbo",
			texts: []string{"first", "second", "third"},
		},
		{
			name:  "empty strings are kept",
			model: "gpt-4",
			texts: []string{"", " ", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := NewConversation(tt.model, tt.texts)
			if conv.Model != tt.model {
				t.Errorf("NewConversation() model = %v, want %v", conv.Model, tt.model)
			}
			if conv.Len() != len(tt.texts) {
				t.Fatalf("NewConversation() len = %d, want %d", conv.Len(), len(tt.texts))
			}
			for i, msg := range conv.Messages {
				if msg.Role != RoleUser {
					t.Errorf("message[%d] role = %v, want %v", i, msg.Role, RoleUser)
				}
				if msg.Content != tt.texts[i] {
					t.Errorf("message[%d] content = %q, want %q", i, msg.Content, tt.texts[i])
				}
			}
			if conv.ID == "" {
				t.Errorf("NewConversation() ID is empty")
			}
		})
	}
}

func TestConversationAlternatingTurns(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 20} {
		conv := NewConversation("gpt-4", nil)
		for i := 0; i < n; i++ {
			conv.AppendUserTurn("question")
			conv.AppendAssistantTurn("answer")
		}
		if conv.Len() != 2*n {
			t.Fatalf("n=%d: len = %d, want %d", n, conv.Len(), 2*n)
		}
		for i, msg := range conv.Messages {
			want := RoleUser
			if i%2 == 1 {
				want = RoleAssistant
			}
			if msg.Role != want {
				t.Errorf("n=%d: message[%d] role = %v, want %v", n, i, msg.Role, want)
			}
		}
	}
}

func TestConversationReadyToSend(t *testing.T) {
	tests := []struct {
		name string
		conv *Conversation
		want bool
	}{
		{
			name: "empty",
			conv: NewConversation("gpt-4", nil),
			want: false,
		},
		{
			name: "ends with user",
			conv: NewConversation("gpt-4", []string{"hi"}),
			want: true,
		},
		{
			name: "ends with assistant",
			conv: func() *Conversation {
				c := NewConversation("gpt-4", []string{"hi"})
				c.AppendAssistantTurn("hello")
				return c
			}(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conv.ReadyToSend(); got != tt.want {
				t.Errorf("ReadyToSend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConversationWireFormat(t *testing.T) {
	conv := NewConversation("gpt-4", []string{"Hello", ""})
	conv.AppendAssistantTurn("Hi there")

	data, err := json.Marshal(conv)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(fields) != 2 {
		t.Errorf("wire fields = %v, want exactly model and messages", fields)
	}

	var decoded Conversation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded.Model != conv.Model {
		t.Errorf("decoded model = %v, want %v", decoded.Model, conv.Model)
	}
	if !reflect.DeepEqual(decoded.Messages, conv.Messages) {
		t.Errorf("decoded messages = %v, want %v", decoded.Messages, conv.Messages)
	}
}

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name    string
		resp    *Response
		want    string
		wantErr error
	}{
		{
			name: "first choice wins",
			resp: &Response{Choices: []Choice{
				{Message: NewAssistantMessage("one")},
				{Message: NewAssistantMessage("two")},
			}},
			want: "one",
		},
		{
			name:    "empty choices",
			resp:    &Response{Choices: []Choice{}},
			wantErr: ErrEmptyChoices,
		},
		{
			name:    "nil response",
			resp:    nil,
			wantErr: ErrEmptyChoices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractReply(tt.resp)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ExtractReply() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExtractReply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequestRejectedError(t *testing.T) {
	var err error = &RequestRejectedError{StatusCode: 401, Body: "invalid api key"}
	if got, want := err.Error(), "request rejected (HTTP 401): invalid api key"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if IsFatal(err) {
		t.Errorf("IsFatal(%v) = true, want false", err)
	}
	if !IsFatal(errors.Join(ErrSerialization, errors.New("x"))) {
		t.Errorf("IsFatal(serialization) = false, want true")
	}
}

type stubClient struct {
	resp *Response
	err  error
	sent int
}

func (s *stubClient) Send(ctx context.Context, conv *Conversation) (*Response, error) {
	s.sent++
	return s.resp, s.err
}

func TestAsk(t *testing.T) {
	tests := []struct {
		name    string
		client  *stubClient
		want    string
		wantLen int
		wantErr error
	}{
		{
			name:    "reply appended",
			client:  &stubClient{resp: &Response{Choices: []Choice{{Message: NewAssistantMessage("Hi there")}}}},
			want:    "Hi there",
			wantLen: 2,
		},
		{
			name:    "send failure leaves history",
			client:  &stubClient{err: ErrTransport},
			wantLen: 1,
			wantErr: ErrTransport,
		},
		{
			name:    "empty choices leaves history",
			client:  &stubClient{resp: &Response{Choices: []Choice{}}},
			wantLen: 1,
			wantErr: ErrEmptyChoices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := NewConversation("gpt-4", []string{"Hello"})
			got, err := Ask(context.Background(), tt.client, conv)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Ask() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Ask() = %v, want %v", got, tt.want)
			}
			if conv.Len() != tt.wantLen {
				t.Errorf("Ask() conversation len = %d, want %d", conv.Len(), tt.wantLen)
			}
			if tt.client.sent != 1 {
				t.Errorf("Ask() sent %d requests, want 1", tt.client.sent)
			}
		})
	}
}
