package domain

import (
	"fmt"
	"slices"
	"strings"
)

// BrandVoiceProfile describes how a brand speaks. Tone, Style and Vocabulary
// are inserted verbatim into prompts; Characteristics are display tags in
// display order.
type BrandVoiceProfile struct {
	ID              BrandVoice
	DisplayName     string
	Description     string
	Tone            string
	Style           string
	Vocabulary      string
	Characteristics []string
}

// Possessive returns the display name in possessive form ("Nike's").
// Names that already end in "'s" are returned unchanged.
func (p BrandVoiceProfile) Possessive() string {
	if strings.HasSuffix(p.DisplayName, "'s") {
		return p.DisplayName
	}
	return p.DisplayName + "'s"
}

func (p BrandVoiceProfile) clone() BrandVoiceProfile {
	p.Characteristics = slices.Clone(p.Characteristics)
	return p
}

// brandVoiceCatalog is read-only after package initialization.
var brandVoiceCatalog = map[BrandVoice]BrandVoiceProfile{
	BrandVoiceNike: {
		ID:              BrandVoiceNike,
		DisplayName:     "Nike",
		Description:     `Motivational, direct, empowering language. Uses second-person "you" frequently with strong action verbs.`,
		Tone:            "motivational, direct, empowering",
		Style:           "action-oriented, bold, inspirational",
		Vocabulary:      "dynamic verbs, second-person 'you', capitalized emphasis",
		Characteristics: []string{"Motivational", "Action-Oriented", "Empowering"},
	},
	BrandVoiceApple: {
		ID:              BrandVoiceApple,
		DisplayName:     "Apple",
		Description:     "Minimalist, elegant, emphasizes simplicity. Short sentences with powerful adjectives. Clean and precise language.",
		Tone:            "minimalist, elegant, confident",
		Style:           "clean, precise, sophisticated",
		Vocabulary:      "simple words, short sentences, powerful adjectives",
		Characteristics: []string{"Minimalist", "Elegant", "Simple"},
	},
	BrandVoiceWendys: {
		ID:              BrandVoiceWendys,
		DisplayName:     "Wendy's",
		Description:     "Sassy, humorous, conversational tone. Uses casual language with pop culture references and witty comebacks.",
		Tone:            "sassy, humorous, irreverent",
		Style:           "conversational, witty, slightly sarcastic",
		Vocabulary:      "casual language, pop culture references, emojis",
		Characteristics: []string{"Sassy", "Humorous", "Conversational"},
	},
	BrandVoiceSouthwest: {
		ID:              BrandVoiceSouthwest,
		DisplayName:     "Southwest",
		Description:     "Friendly, warm, and conversational. Focuses on people and relationships with a hint of playfulness and heart.",
		Tone:            "friendly, warm, welcoming",
		Style:           "conversational, genuine, heartfelt",
		Vocabulary:      "people-focused terms, relational language, heart symbols",
		Characteristics: []string{"Friendly", "Warm", "Conversational"},
	},
}

// LookupBrandVoice returns the profile for id.
// Returns ErrUnknownBrandVoice if id is outside the fixed set.
func LookupBrandVoice(id BrandVoice) (BrandVoiceProfile, error) {
	p, ok := brandVoiceCatalog[id]
	if !ok {
		return BrandVoiceProfile{}, fmt.Errorf("brand voice %q: %w", id, ErrUnknownBrandVoice)
	}
	return p.clone(), nil
}

// BrandVoiceProfiles returns every profile in canonical order.
func BrandVoiceProfiles() []BrandVoiceProfile {
	all := AllBrandVoices()
	out := make([]BrandVoiceProfile, len(all))
	for i, id := range all {
		out[i] = brandVoiceCatalog[id].clone()
	}
	return out
}
