package moderation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// DefaultProfanityWords returns the built-in blocklist. Deployments
// extend or replace it at runtime, the bot additionally loads persisted
// words at startup.
func DefaultProfanityWords() []string {
	return []string{
		"damn", "shit", "fuck", "bitch", "asshole", "bastard",
		"crap", "piss", "hell", "ass", "slut", "whore",
	}
}

// profanityFilter matches messages against a compiled blocklist. The
// word set is mutable at runtime; every mutation rebuilds the compiled
// pattern set and publishes it atomically, so concurrent detection never
// observes a half-rebuilt set.
type profanityFilter struct {
	mu       sync.Mutex // serializes rebuilds
	compiled atomic.Pointer[compiledWordList]
}

type compiledWordList struct {
	words    map[string]bool
	patterns []*regexp.Regexp
}

func newProfanityFilter(words []string) *profanityFilter {
	f := &profanityFilter{}

	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = true
	}
	delete(set, "")

	f.compiled.Store(compileWordList(set))
	return f
}

// Detect reports whether the message contains a blocked word, and the
// matched spellings as written by the user.
func (f *profanityFilter) Detect(message string) (bool, []string) {
	found := make([]string, 0)
	for _, pattern := range f.compiled.Load().patterns {
		found = append(found, pattern.FindAllString(message, -1)...)
	}
	return len(found) > 0, found
}

func (f *profanityFilter) Add(words []string) {
	f.rebuild(func(set map[string]bool) {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if len(w) > 0 {
				set[w] = true
			}
		}
	})
}

func (f *profanityFilter) Remove(words []string) {
	f.rebuild(func(set map[string]bool) {
		for _, w := range words {
			delete(set, strings.ToLower(strings.TrimSpace(w)))
		}
	})
}

func (f *profanityFilter) Words() []string {
	current := f.compiled.Load()

	words := make([]string, 0, len(current.words))
	for w := range current.words {
		words = append(words, w)
	}

	sort.Strings(words)
	return words
}

func (f *profanityFilter) rebuild(mutate func(set map[string]bool)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.compiled.Load()
	set := make(map[string]bool, len(current.words))
	for w := range current.words {
		set[w] = true
	}

	mutate(set)
	f.compiled.Store(compileWordList(set))
}

// leet maps letters to character classes covering common substitutions.
var leet = map[rune]string{
	'a': "[a@]",
	'e': "[e3]",
	'i': "[i1]",
	'o': "[o0]",
}

func compileWordList(words map[string]bool) *compiledWordList {
	compiled := &compiledWordList{
		words:    words,
		patterns: make([]*regexp.Regexp, 0, len(words)),
	}

	for word := range words {
		var b strings.Builder
		for _, r := range word {
			if class, ok := leet[r]; ok {
				b.WriteString(class)
			} else {
				b.WriteString(regexp.QuoteMeta(string(r)))
			}
		}

		pattern, err := regexp.Compile(fmt.Sprintf(`(?i)\b%s\b`, b.String()))
		if err != nil {
			continue
		}
		compiled.patterns = append(compiled.patterns, pattern)
	}

	return compiled
}
