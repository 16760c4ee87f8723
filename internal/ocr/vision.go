package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// visionPrompt asks for a faithful transcription; layout fidelity matters
// because the downstream parser slices on label positions.
const visionPrompt = "Transcribe all German text visible in this scanned " +
	"newspaper column exactly as printed, preserving line breaks. Output " +
	"only the transcription, no commentary."

// Vision transcribes page scans through an OpenAI-compatible chat
// completions endpoint with image input.
type Vision struct {
	client *openai.Client
	model  string
}

// NewVision builds a vision recognizer. baseURL may point at any
// OpenAI-compatible server; an empty baseURL uses the public API.
func NewVision(baseURL, apiKey, model string) *Vision {
	transportCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		transportCfg.BaseURL = baseURL
	}
	transportCfg.HTTPClient = &http.Client{}
	return &Vision{client: openai.NewClientWithConfig(transportCfg), model: model}
}

func (v *Vision) Recognize(ctx context.Context, image []byte) (string, error) {
	mime := http.DetectContentType(image)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("vision ocr: unsupported payload type %s", mime)
	}
	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(image)

	req := openai.ChatCompletionRequest{
		Model: v.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: visionPrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
	}

	resp, err := v.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision ocr: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision ocr: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
