package content

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	scriptOpenRe   = regexp.MustCompile(`(?i)<script[^>]*>?`)
	eventHandlerRe = regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
	dataHTMLRe     = regexp.MustCompile(`(?i)data:text/html`)

	dataImageRe = regexp.MustCompile(`^data:image/(png|jpeg|jpg|gif|webp);base64,[A-Za-z0-9+/=]+$`)
)

// SanitizeText cleans free-text input before it enters the content
// document: truncates to maxLength runes, strips null bytes, script
// blocks, inline event handlers and dangerous protocol prefixes, and
// trims surrounding whitespace. Total function, returns "" for empty input.
func SanitizeText(input string, maxLength int) string {
	if input == "" {
		return ""
	}

	runes := []rune(input)
	if len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	sanitized := string(runes)

	sanitized = strings.ReplaceAll(sanitized, "\x00", "")
	sanitized = scriptBlockRe.ReplaceAllString(sanitized, "")
	sanitized = scriptOpenRe.ReplaceAllString(sanitized, "")
	sanitized = eventHandlerRe.ReplaceAllString(sanitized, "")
	sanitized = jsProtocolRe.ReplaceAllString(sanitized, "")
	sanitized = dataHTMLRe.ReplaceAllString(sanitized, "")

	return strings.TrimSpace(sanitized)
}

// SanitizeURL allow-lists image sources: strict base64 data:image URLs
// and http(s) URLs pass through, everything else (javascript:, vbscript:,
// data:text/html, file:, relative paths) collapses to "". Image src is an
// injection vector, so this is a whitelist rather than a blacklist.
func SanitizeURL(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "data:image/") {
		if dataImageRe.MatchString(trimmed) {
			return trimmed
		}
		return ""
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}

	return ""
}
