package translate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProviderValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "missing api key",
			cfg:     Config{Provider: ProviderOpenAI, Model: "gpt-4o-mini"},
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "missing model",
			cfg:     Config{Provider: ProviderOpenAI, APIKey: "sk-test"},
			wantErr: ErrMissingModel,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "watson", APIKey: "sk-test", Model: "m"},
			wantErr: ErrInvalidProvider,
		},
		{
			name:    "compatible requires base url",
			cfg:     Config{Provider: ProviderCompatible, APIKey: "sk-test", Model: "m"},
			wantErr: ErrMissingBaseURL,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProvider(tc.cfg)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewProviderConstructsEachKind(t *testing.T) {
	tests := []struct {
		provider string
		cfg      Config
	}{
		{ProviderOpenAI, Config{Provider: ProviderOpenAI, APIKey: "sk-test", Model: "gpt-4o-mini"}},
		{ProviderAnthropic, Config{Provider: ProviderAnthropic, APIKey: "sk-test", Model: "claude-sonnet-4-5"}},
		{ProviderCompatible, Config{Provider: ProviderCompatible, APIKey: "sk-test", BaseURL: "http://localhost:11434/v1", Model: "llama3"}},
	}

	for _, tc := range tests {
		t.Run(tc.provider, func(t *testing.T) {
			p, err := NewProvider(tc.cfg)
			require.NoError(t, err)
			require.Equal(t, tc.provider, p.Name())
		})
	}
}

func TestCheckRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "valid pair", req: Request{Text: "Hello", SourceLanguage: "en", TargetLanguage: "fr"}},
		{name: "region subtag", req: Request{Text: "Hello", SourceLanguage: "en", TargetLanguage: "pt-BR"}},
		{name: "underscore form accepted", req: Request{Text: "Hello", SourceLanguage: "en", TargetLanguage: "pt_BR"}},
		{name: "empty text skips validation", req: Request{Text: "", SourceLanguage: "en", TargetLanguage: "!!"}},
		{name: "garbage target", req: Request{Text: "Hello", SourceLanguage: "en", TargetLanguage: "not a language"}, wantErr: ErrInvalidLanguageCode},
		{name: "garbage source", req: Request{Text: "Hello", SourceLanguage: "123", TargetLanguage: "fr"}, wantErr: ErrInvalidLanguageCode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkRequest(tc.req)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInterpret(t *testing.T) {
	req := Request{Text: "Hello", SourceLanguage: "en", TargetLanguage: "fr"}

	result, err := interpret("Bonjour", req)
	require.NoError(t, err)
	require.Equal(t, "Bonjour", result.TranslatedText)
	require.Equal(t, "en", result.SourceLanguage)
	require.Equal(t, "fr", result.TargetLanguage)

	result, err = interpret("\n  Bonjour\n", req)
	require.NoError(t, err)
	require.Equal(t, "Bonjour", result.TranslatedText)

	_, err = interpret("UNSUPPORTED", req)
	require.ErrorIs(t, err, ErrUnsupportedLanguagePair)

	_, err = interpret("unsupported", req)
	require.ErrorIs(t, err, ErrUnsupportedLanguagePair)

	_, err = interpret("", req)
	require.ErrorIs(t, err, ErrUnsupportedLanguagePair)

	_, err = interpret("   \n ", req)
	require.ErrorIs(t, err, ErrUnsupportedLanguagePair)
}

func TestGetTranslatePrompt(t *testing.T) {
	prompt := GetTranslatePrompt("en", "fr")

	require.Contains(t, prompt, "<source_language>en</source_language>")
	require.Contains(t, prompt, "<target_language>fr</target_language>")
	require.Contains(t, prompt, "UNSUPPORTED")
}
