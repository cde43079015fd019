package provider

import "strings"

// ExtractText returns the first non-blank text of raw, trimmed.
// The convenience OutputText wins over the first nested output content.
func ExtractText(raw RawResponse) (string, bool) {
	if raw.OutputText != nil {
		if text := strings.TrimSpace(*raw.OutputText); text != "" {
			return text, true
		}
	}

	if len(raw.Output) == 0 || len(raw.Output[0].Content) == 0 {
		return "", false
	}

	first := raw.Output[0].Content[0].Text
	if first == nil {
		return "", false
	}

	text := strings.TrimSpace(*first)
	if text == "" {
		return "", false
	}

	return text, true
}
