// Package googlegenai provides an input plugin that asks a Google Gemini model
// for a seed colour matching a text prompt.
package googlegenai

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/jmylchreest/hueseed/internal/colour"
	"github.com/jmylchreest/hueseed/internal/plugin/input"
)

const (
	// defaultModel is the default model used when none is specified.
	defaultModel = "gemini-2.5-flash"

	// defaultBackend is the default backend used when none is specified.
	defaultBackend = "gemini-api"

	// promptTemplate wraps the user's prompt so the model answers with a colour.
	promptTemplate = "Reply with exactly one sRGB colour as a hex code in the form #rrggbb, and nothing else. " +
		"Choose the colour that best captures: %s"
)

var hexPattern = regexp.MustCompile(`#?\b([0-9a-fA-F]{6})\b`)

// Plugin implements the input.Plugin interface for Gemini-chosen seed colours.
type Plugin struct {
	prompt  string
	model   string
	backend string

	// generate sends a prompt and returns the model's text reply.
	generate func(ctx context.Context, prompt string, opts input.SeedOptions) (string, error)
}

// New creates a new Google Gen AI input plugin with default settings.
func New() *Plugin {
	p := &Plugin{
		model:   defaultModel,
		backend: defaultBackend,
	}
	p.generate = p.generateText
	return p
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "google-genai"
}

// Description returns a human-readable description.
func (p *Plugin) Description() string {
	return "Ask Google Gemini for a seed colour that matches a text prompt"
}

// RegisterFlags registers plugin-specific flags.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.prompt, "google-genai.prompt", "", "Text description of the mood or subject (required)")
	cmd.Flags().StringVar(&p.model, "google-genai.model", p.model, "Gemini model to use")
	cmd.Flags().StringVar(&p.backend, "google-genai.backend", p.backend, "Google Gen AI backend to use (gemini-api or vertex-ai)")
}

// SetPrompt sets the text prompt.
func (p *Plugin) SetPrompt(prompt string) {
	p.prompt = prompt
}

// Validate checks if required inputs are configured.
func (p *Plugin) Validate() error {
	if strings.TrimSpace(p.prompt) == "" {
		return fmt.Errorf("prompt is required (use --google-genai.prompt)")
	}
	if p.backend != "gemini-api" && p.backend != "vertex-ai" {
		return fmt.Errorf("invalid backend '%s' (valid: gemini-api, vertex-ai)", p.backend)
	}
	return nil
}

// Seed asks the model for a colour and parses the first hex code in the reply.
func (p *Plugin) Seed(ctx context.Context, opts input.SeedOptions) (colour.Colour, error) {
	logger := opts.LoggerOrNull()
	logger.Info("requesting seed colour", "backend", p.backend, "model", p.model, "prompt", p.prompt)

	reply, err := p.generate(ctx, fmt.Sprintf(promptTemplate, p.prompt), opts)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("colour generation failed: %w", err)
	}
	logger.Debug("model replied", "reply", reply)

	hex, err := extractHex(reply)
	if err != nil {
		return colour.Colour{}, err
	}
	return colour.FromHex(hex)
}

// extractHex returns the first six-digit hex code in s, with a leading '#'.
func extractHex(s string) (string, error) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: no hex colour in model reply %q", colour.ErrInvalidFormat, s)
	}
	return "#" + strings.ToLower(m[1]), nil
}

// clientSetup encapsulates client configuration and creation.
func (p *Plugin) clientSetup(ctx context.Context) (*genai.Client, error) {
	clientConfig := &genai.ClientConfig{}

	if p.backend == "vertex-ai" {
		clientConfig.Backend = genai.BackendVertexAI
	} else {
		clientConfig.Backend = genai.BackendGeminiAPI
	}

	// Check for API key (required for Gemini API backend)
	if clientConfig.Backend == genai.BackendGeminiAPI {
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required\nGet one at: https://aistudio.google.com/api-keys")
		}
		clientConfig.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}
	return client, nil
}

// generateText calls GenerateContent and joins the text parts of the first
// candidate.
func (p *Plugin) generateText(ctx context.Context, prompt string, opts input.SeedOptions) (string, error) {
	client, err := p.clientSetup(ctx)
	if err != nil {
		return "", err
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "text/plain",
	}

	opts.LoggerOrNull().Debug("calling GenerateContent", "model", p.model)
	response, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", err
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no text in response")
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
