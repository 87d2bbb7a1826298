// Package translate abstracts the external translation capability behind a
// single-text-in, single-text-out provider interface.
package translate

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Provider translates one piece of text per call. Implementations must be
// safe for concurrent use; one provider is constructed at process start and
// shared across requests.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// Translate translates req.Text from req.SourceLanguage into
	// req.TargetLanguage.
	Translate(ctx context.Context, req Request) (Result, error)
}

// Request is a single-field translation request.
type Request struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
}

// Result echoes the resolved language pair along with the translated text.
type Result struct {
	TranslatedText string
	SourceLanguage string
	TargetLanguage string
}

// Config holds the configuration for a translation provider.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai, required for compatible
	Model    string
}

// Provider type constants.
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")

	// ErrInvalidLanguageCode is returned when the target language is not a
	// parseable language tag.
	ErrInvalidLanguageCode = errors.New("invalid language code")
	// ErrUnsupportedLanguagePair is returned when the provider cannot produce
	// a translation for the requested pair.
	ErrUnsupportedLanguagePair = errors.New("unsupported language pair")
)

// NewProvider creates a translation provider from config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, ErrInvalidProvider
	}
}

// checkRequest rejects unusable requests before any API call is spent on
// them. Language codes are accepted in BCP 47 or underscore form ("pt_BR").
func checkRequest(req Request) error {
	if req.Text == "" {
		return nil
	}
	for _, code := range []string{req.SourceLanguage, req.TargetLanguage} {
		tag := strings.ReplaceAll(code, "_", "-")
		if _, err := language.Parse(tag); err != nil {
			return ErrInvalidLanguageCode
		}
	}
	return nil
}

// interpret maps the raw model output to a result. Models are instructed to
// answer UNSUPPORTED when they cannot translate into the requested language.
func interpret(output string, req Request) (Result, error) {
	text := strings.TrimSpace(output)
	if text == "" || strings.EqualFold(text, "UNSUPPORTED") {
		return Result{}, ErrUnsupportedLanguagePair
	}
	return Result{
		TranslatedText: text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	}, nil
}
