package text

import (
	"strings"
	"sync"

	gtlanguage "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"
)

// Language is an interned BCP 47 language tag. Two Languages built from
// tags with the same canonical form compare equal with ==.
//
// The zero value is the undetermined language.
type Language struct {
	tag *string
}

// languages maps canonical tags to their interned string.
var languages sync.Map // string -> *string

// NewLanguage returns the interned language for tag. The tag is
// canonicalized first, so "en_US" and "en-us" yield the same Language.
// An empty tag yields the zero Language.
func NewLanguage(tag string) Language {
	canon := canonicalTag(tag)
	if canon == "" {
		return Language{}
	}
	if v, ok := languages.Load(canon); ok {
		return Language{tag: v.(*string)}
	}
	v, _ := languages.LoadOrStore(canon, &canon)
	return Language{tag: v.(*string)}
}

func canonicalTag(tag string) string {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return ""
	}
	if t, err := language.Parse(tag); err == nil {
		return t.String()
	}
	return string(gtlanguage.NewLanguage(tag))
}

// DefaultLanguage returns the language of the process locale, taken
// from LC_ALL, LC_CTYPE or LANG.
func DefaultLanguage() Language {
	return NewLanguage(string(gtlanguage.DefaultLanguage()))
}

// String returns the canonical tag, or "" for the zero Language.
func (l Language) String() string {
	if l.tag == nil {
		return ""
	}
	return *l.tag
}

// IsZero reports whether l is the undetermined language.
func (l Language) IsZero() bool {
	return l.tag == nil
}

// Primary returns the language subtag, e.g. "sr" for "sr-Latn".
func (l Language) Primary() string {
	s := l.String()
	if i := strings.IndexByte(s, '-'); i >= 0 {
		return s[:i]
	}
	return s
}

func (l Language) goText() gtlanguage.Language {
	return gtlanguage.NewLanguage(l.String())
}
