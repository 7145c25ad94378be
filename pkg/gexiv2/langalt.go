package gexiv2

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const xDefault = "x-default"

// LangText is one entry of an XMP language alternative (LangAlt) such as
// Xmp.dc.title. The entry for the "x-default" qualifier has Default set and
// Lang equal to language.Und.
type LangText struct {
	Lang    language.Tag
	Default bool
	Text    string
}

// String renders the entry in the form Exiv2 reads and writes:
// lang="de-CH" Text.
func (lt LangText) String() string {
	lang := lt.Lang.String()
	if lt.Default {
		lang = xDefault
	}
	return "lang=" + strconv.Quote(lang) + " " + lt.Text
}

// ParseLangText parses one language alternative entry. Text without a
// lang="..." qualifier belongs to the x-default entry.
func ParseLangText(s string) (LangText, error) {
	rest, ok := strings.CutPrefix(s, `lang="`)
	if !ok {
		return LangText{Lang: language.Und, Default: true, Text: s}, nil
	}
	lang, text, ok := strings.Cut(rest, `"`)
	if !ok {
		return LangText{}, fmt.Errorf("%w: unterminated language qualifier in %q", ErrInvalidInput, s)
	}
	text = strings.TrimPrefix(text, " ")
	if lang == xDefault {
		return LangText{Lang: language.Und, Default: true, Text: text}, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return LangText{}, fmt.Errorf("%w: language %q: %w", ErrInvalidInput, lang, err)
	}
	return LangText{Lang: tag, Text: text}, nil
}

// TagLangAlt returns the entries of an XMP LangAlt tag in stored order.
func (m *Metadata) TagLangAlt(tag string) ([]LangText, bool, error) {
	ok, err := m.HasTag(tag)
	if err != nil || !ok {
		return nil, false, err
	}
	raw, err := m.TagStrings(tag)
	if err != nil {
		return nil, false, err
	}
	out := make([]LangText, 0, len(raw))
	for _, s := range raw {
		lt, err := ParseLangText(s)
		if err != nil {
			return nil, false, &Error{Op: "tag-lang-alt", Path: m.Path(), Tag: tag, Err: err}
		}
		out = append(out, lt)
	}
	return out, true, nil
}

// SetTagLangAlt replaces every entry of an XMP LangAlt tag.
func (m *Metadata) SetTagLangAlt(tag string, entries []LangText) error {
	values := make([]string, len(entries))
	for i, lt := range entries {
		values[i] = lt.String()
	}
	return m.SetTagStrings(tag, values)
}

// BestLangText picks the entry that best matches the caller's preferred
// languages, falling back to the x-default entry and then to the first one.
func BestLangText(entries []LangText, prefs ...language.Tag) (LangText, bool) {
	if len(entries) == 0 {
		return LangText{}, false
	}
	fallback := entries[0]
	var supported []language.Tag
	var indexes []int
	for i, lt := range entries {
		if lt.Default {
			fallback = lt
			continue
		}
		supported = append(supported, lt.Lang)
		indexes = append(indexes, i)
	}
	if len(supported) == 0 || len(prefs) == 0 {
		return fallback, true
	}
	_, idx, conf := language.NewMatcher(supported).Match(prefs...)
	if conf == language.No {
		return fallback, true
	}
	return entries[indexes[idx]], true
}
