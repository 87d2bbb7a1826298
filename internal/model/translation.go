package model

import "time"

// Translation is one persistent translation cache entry, keyed by
// (novel id, translation key) where the key is "{field}_{targetLanguage}".
type Translation struct {
	ID             int64
	NovelID        string
	TranslationKey string
	TranslatedText string
	SourceLanguage string
	TargetLanguage string
	OriginalText   string
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

// TranslationKey derives the cache lookup key for a field/language pair. The
// language code is passed through exactly as the caller supplied it.
func TranslationKey(field, targetLanguage string) string {
	return field + "_" + targetLanguage
}
