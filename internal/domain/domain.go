package domain

import "strings"

type SummaryType string

const (
	SummaryTypeShort    SummaryType = "short"
	SummaryTypeDetailed SummaryType = "detailed"
	SummaryTypeBullet   SummaryType = "bullet"
	SummaryTypeKid      SummaryType = "kid"

	DefaultTargetLanguage = "English"
)

// SummaryTypes lists every supported summary type in display order.
var SummaryTypes = []SummaryType{
	SummaryTypeShort,
	SummaryTypeDetailed,
	SummaryTypeBullet,
	SummaryTypeKid,
}

// TargetLanguages are offered in the form. Any other value is passed through as is.
var TargetLanguages = []string{
	"English",
	"Spanish",
	"French",
	"German",
	"Italian",
	"Portuguese",
	"Chinese",
	"Japanese",
	"Korean",
	"Hindi",
	"Arabic",
}

// ParseSummaryType falls back to SummaryTypeShort for unknown keys.
func ParseSummaryType(key string) SummaryType {
	switch t := SummaryType(strings.ToLower(strings.TrimSpace(key))); t {
	case SummaryTypeShort, SummaryTypeDetailed, SummaryTypeBullet, SummaryTypeKid:
		return t
	default:
		return SummaryTypeShort
	}
}

func (t SummaryType) Label() string {
	switch t {
	case SummaryTypeDetailed:
		return "Detailed"
	case SummaryTypeBullet:
		return "Bullet points"
	case SummaryTypeKid:
		return "Explain like I'm 10"
	default:
		return "Short"
	}
}

type SummaryRequest struct {
	Text             string
	Type             SummaryType
	TargetLanguage   string
	SentimentEnabled bool
}

// SummaryResult holds either Summary or Error, never both.
// Sentiment is only set alongside Summary.
type SummaryResult struct {
	Summary   *string
	Sentiment *string
	Error     *string
}

func SummaryOf(summary string) SummaryResult {
	return SummaryResult{Summary: &summary}
}

func ErrorOf(message string) SummaryResult {
	return SummaryResult{Error: &message}
}

func (r SummaryResult) Failed() bool {
	return r.Error != nil
}
