package transform

import (
	"fmt"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// Any change to this template changes every generated rewrite; prompt_test.go
// pins it.
const promptTemplate = `Transform the following text into %s voice.

Brand Voice Characteristics:
* Tone: %s
* Style: %s
* Vocabulary: %s

Content Type: %s

Original text: "%s"

Respond with ONLY the transformed text, nothing else. Be concise but maintain the key information from the original text.`

// BuildPrompt renders the generation prompt for text in the given brand voice
// and content type. The text is inserted verbatim between double quotes.
func BuildPrompt(text string, brand domain.BrandVoice, ct domain.ContentType) (string, error) {
	profile, err := domain.LookupBrandVoice(brand)
	if err != nil {
		return "", err
	}
	if !ct.IsValid() {
		return "", domain.NewValidationError("contentType", fmt.Sprintf("unsupported value %q", ct))
	}

	return fmt.Sprintf(promptTemplate,
		profile.Possessive(),
		profile.Tone,
		profile.Style,
		profile.Vocabulary,
		ct.Label(),
		text,
	), nil
}
