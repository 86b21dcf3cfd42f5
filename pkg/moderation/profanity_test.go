package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfanityDetect(t *testing.T) {
	assert := assert.New(t)

	f := newProfanityFilter(DefaultProfanityWords())

	matched, terms := f.Detect("well damn, that went poorly")
	assert.True(matched)
	assert.Contains(terms, "damn")

	matched, _ = f.Detect("a perfectly polite sentence")
	assert.False(matched)
}

func TestProfanityDetectCaseInsensitive(t *testing.T) {
	assert := assert.New(t)

	f := newProfanityFilter(DefaultProfanityWords())

	matched, terms := f.Detect("DAMN")
	assert.True(matched)
	assert.Contains(terms, "DAMN")
}

func TestProfanityDetectLeetspeak(t *testing.T) {
	assert := assert.New(t)

	f := newProfanityFilter(DefaultProfanityWords())

	matched, _ := f.Detect("this is sh1t")
	assert.True(matched)

	matched, _ = f.Detect("what a d@mn mess")
	assert.True(matched)
}

func TestProfanityWordBoundaries(t *testing.T) {
	assert := assert.New(t)

	f := newProfanityFilter(DefaultProfanityWords())

	// embedded substrings never match
	matched, _ := f.Detect("a classic assessment of hello")
	assert.False(matched)

	matched, _ = f.Detect("kick his ass")
	assert.True(matched)
}

func TestProfanityAddRemove(t *testing.T) {
	assert := assert.New(t)

	f := newProfanityFilter(DefaultProfanityWords())

	matched, _ := f.Detect("bloody nonsense")
	assert.False(matched)

	f.Add([]string{"Bloody"})
	matched, _ = f.Detect("bloody nonsense")
	assert.True(matched)
	assert.Contains(f.Words(), "bloody")

	f.Remove([]string{"bloody"})
	matched, _ = f.Detect("bloody nonsense")
	assert.False(matched)
	assert.NotContains(f.Words(), "bloody")
}

func TestProfanityAddIgnoresBlanks(t *testing.T) {
	assert := assert.New(t)

	f := newProfanityFilter([]string{"jerk"})
	f.Add([]string{"", "  "})

	assert.Equal([]string{"jerk"}, f.Words())
}
