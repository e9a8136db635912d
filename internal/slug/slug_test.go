package slug_test

import (
	"testing"
	"time"

	"go-gin-event-program/internal/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain words", "Rocher Party", "rocher-party"},
		{"accented vowels", "Soirée à l'Été", "soiree-a-lete"},
		{"cedilla", "Garçon Français", "garcon-francais"},
		{"all vowel accents", "àáâäã èéêë ìíîï òóôöõ ùúûü", "aaaaa-eeee-iiii-ooooo-uuuu"},
		{"decomposed accents", "Soire\u0301e", "soiree"},
		{"other accented letters dropped", "España Fiesta", "espaa-fiesta"},
		{"unlisted letters dropped", "Straße Øst", "strae-st"},
		{"punctuation dropped", "Demo! (2025) #1", "demo-2025-1"},
		{"whitespace collapsed", "  Big   Night \t Out ", "big-night-out"},
		{"existing hyphens kept", "after-party", "after-party"},
		{"hyphen runs collapsed", "Rock - Party", "rock-party"},
		{"digits kept", "Gala 2025", "gala-2025"},
		{"nothing usable", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slug.Make(tt.in)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.True(t, slug.Valid(got), "derived slug %q must be valid", got)
			}
		})
	}
}

func TestMake_Deterministic(t *testing.T) {
	assert.Equal(t, slug.Make("Fête de la Musique"), slug.Make("Fête de la Musique"))
}

func TestWithSuffix(t *testing.T) {
	at := time.UnixMilli(1718990000123)

	assert.Equal(t, "demo-1718990000123", slug.WithSuffix("demo", at))
	assert.True(t, slug.Valid(slug.WithSuffix("demo", at)))
}

func TestValid(t *testing.T) {
	assert.True(t, slug.Valid("demo"))
	assert.True(t, slug.Valid("rocher-party-2025"))
	assert.False(t, slug.Valid(""))
	assert.False(t, slug.Valid("Demo"))
	assert.False(t, slug.Valid("-demo"))
	assert.False(t, slug.Valid("demo-"))
	assert.False(t, slug.Valid("de--mo"))
	assert.False(t, slug.Valid("de mo"))
	assert.False(t, slug.Valid("démo"))
}
