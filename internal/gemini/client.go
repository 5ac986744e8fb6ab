package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

var (
	// ErrMissingAPIKey is returned when no Gemini credential is configured.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is required")
	// ErrNoImage is returned when a response carries no inline image payload.
	ErrNoImage = errors.New("no image in response")
)

// Client calls the Generative Language REST API for text and image generation.
type Client struct {
	apiKey     string
	textModel  string
	imageModel string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Gemini client. apiKey may be empty; calls will then
// fail with ErrMissingAPIKey so handlers can surface an explicit config error.
func NewClient(apiKey, textModel, imageModel string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:     strings.TrimSpace(apiKey),
		textModel:  textModel,
		imageModel: imageModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type contentPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// GenerateDescription asks the text model for the short elf assessment.
// Failures are returned to the caller; the orchestrator decides the fallback.
func (c *Client) GenerateDescription(ctx context.Context, name string, score int, level string) (string, error) {
	return c.GenerateText(ctx, BuildDescriptionPrompt(name, score, level))
}

// GenerateText runs a raw prompt against the text model and returns the first
// candidate's text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, c.textModel, generateRequest{
		Contents: []content{{Parts: []contentPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if text := strings.TrimSpace(part.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("gemini response empty content")
}

// EditImage sends a base64-encoded photo plus an edit instruction to the image
// model and returns the first inline image payload as a displayable data URL.
// The input must not carry a data-URI prefix.
func (c *Client) EditImage(ctx context.Context, imageBase64, prompt string) (string, error) {
	resp, err := c.generate(ctx, c.imageModel, generateRequest{
		Contents: []content{{Parts: []contentPart{
			{InlineData: &inlineData{MimeType: "image/png", Data: imageBase64}},
			{Text: prompt},
		}}},
	})
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mime := part.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, part.InlineData.Data), nil
			}
		}
	}
	return "", ErrNoImage
}

func (c *Client) generate(ctx context.Context, model string, reqBody generateRequest) (*generateResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("gemini model is required")
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("gemini request timeout: %w", err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("gemini response parse: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("gemini error: %s (%s)", parsed.Error.Message, parsed.Error.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini status %d", resp.StatusCode)
	}
	return &parsed, nil
}
