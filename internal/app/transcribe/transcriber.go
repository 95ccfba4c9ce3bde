package transcribe

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// Transcriber converts one audio stream to text.
type Transcriber interface {
	Transcribe(ctx context.Context, name string, audio io.Reader) (string, error)
	// Author is stored with every transcription the transcriber produces.
	Author() string
}

// OpenAIConfig configures the hosted Whisper endpoint.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	// Language is an optional ISO-639-1 hint, e.g. "ht".
	Language   string
	HTTPClient *http.Client
}

// NewClient builds a go-openai client from cfg.
func NewClient(cfg OpenAIConfig) (*openai.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		config.HTTPClient = cfg.HTTPClient
	}
	return openai.NewClientWithConfig(config), nil
}

// RemoteTranscriber uses the OpenAI transcription API.
type RemoteTranscriber struct {
	client   *openai.Client
	language string
}

func NewRemoteTranscriber(client *openai.Client, language string) *RemoteTranscriber {
	return &RemoteTranscriber{client: client, language: language}
}

func (rt *RemoteTranscriber) Author() string {
	return openai.Whisper1
}

// Transcribe uploads audio as name. The name only carries the file extension
// the API uses to detect the format.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, name string, audio io.Reader) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: name,
		Reader:   audio,
		Language: rt.language,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}
	return resp.Text, nil
}
