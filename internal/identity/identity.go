package identity

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"snapsort/internal/placement"
)

// Identity is the structured form of a screenshot filename. It is created by
// Parse, used to plan a destination, and then discarded.
type Identity struct {
	Channel   string    // normalized channel folder name
	Timestamp time.Time // capture time embedded in the filename
	Ext       string    // lowercased extension, including the dot
}

// longLayout matches the extension's verbose timestamp, e.g.
// "Sat-Jan-18-2025_1_06_05-PM".
const longLayout = "Mon-Jan-2-2006_3_04_05-PM"

var (
	// " (1)" style markers browsers append to avoid overwriting downloads.
	duplicateMarker = regexp.MustCompile(`\s*\(\d+\)$`)
	// ISO shape: <channel>_YYYY-MM-DD[_seq]
	isoPattern = regexp.MustCompile(`^(.+)_(\d{4}-\d{2}-\d{2})(?:_\d+)?$`)
)

// Parser classifies filenames against an extension allow-list.
type Parser struct {
	exts map[string]struct{}
}

// NewParser builds a parser accepting the given extensions. Extensions are
// expected lowercased with a leading dot, as produced by the config layer.
func NewParser(extensions []string) *Parser {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[ext] = struct{}{}
	}
	return &Parser{exts: exts}
}

// Parse extracts the channel and capture time from a screenshot filename.
// Filenames that do not match the naming convention yield an error tagged
// placement.ErrUnrecognizedFormat.
func (p *Parser) Parse(filename string) (Identity, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := p.exts[ext]; !ok {
		return Identity{}, placement.Wrap(placement.ErrUnrecognizedFormat, "identity", "parse", "extension not in allow-list: "+filename, nil)
	}

	stem := filename[:len(filename)-len(ext)]
	stem = duplicateMarker.ReplaceAllString(stem, "")

	rawChannel, timestamp, ok := splitLong(stem)
	if !ok {
		rawChannel, timestamp, ok = splitISO(stem)
	}
	if !ok {
		return Identity{}, placement.Wrap(placement.ErrUnrecognizedFormat, "identity", "parse", "no timestamp segment in "+filename, nil)
	}

	channel := NormalizeChannel(rawChannel)
	if channel == "" {
		return Identity{}, placement.Wrap(placement.ErrUnrecognizedFormat, "identity", "parse", "empty channel segment in "+filename, nil)
	}

	return Identity{Channel: channel, Timestamp: timestamp, Ext: ext}, nil
}

// splitLong matches the verbose shape. The channel is everything left of the
// final four underscore-separated segments (date, hour, minute, second-AM/PM),
// which keeps underscores inside channel logins intact.
func splitLong(stem string) (string, time.Time, bool) {
	parts := strings.Split(stem, "_")
	if len(parts) < 5 {
		return "", time.Time{}, false
	}
	channel := strings.Join(parts[:len(parts)-4], "_")
	if channel == "" {
		return "", time.Time{}, false
	}
	stampText := strings.Join(parts[len(parts)-4:], "_")
	stamp, err := time.Parse(longLayout, stampText)
	if err != nil {
		return "", time.Time{}, false
	}
	return channel, stamp, true
}

func splitISO(stem string) (string, time.Time, bool) {
	match := isoPattern.FindStringSubmatch(stem)
	if match == nil {
		return "", time.Time{}, false
	}
	stamp, err := time.Parse("2006-01-02", match[2])
	if err != nil {
		return "", time.Time{}, false
	}
	return match[1], stamp, true
}

// NormalizeChannel folds a raw channel segment into a stable folder name:
// Unicode lowercase, whitespace and path separators collapsed to a single
// hyphen, filesystem-unsafe characters dropped. Visually distinct spellings
// of the same channel always map to the same folder.
func NormalizeChannel(raw string) string {
	lowered := cases.Lower(language.Und).String(raw)

	var b strings.Builder
	b.Grow(len(lowered))
	prevHyphen := false
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			prevHyphen = false
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '/' || r == '\\':
			if !prevHyphen {
				b.WriteRune('-')
				prevHyphen = true
			}
		default:
			// drop control characters and reserved punctuation
		}
	}

	channel := strings.Trim(b.String(), "-.")
	if channel == "." || channel == ".." {
		return ""
	}
	return channel
}
