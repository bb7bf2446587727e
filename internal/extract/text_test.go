package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc", CleanText("a\r\nb\rc"))
}

func TestCleanText_DropsControlCharacters(t *testing.T) {
	assert.Equal(t, "hello world", CleanText("hello\x00 \x07world"))
}

func TestCleanText_CollapsesSpacesAndBlankLines(t *testing.T) {
	assert.Equal(t, "a b\n\n c", CleanText("a  \t b\n\n\n\n c "))
}

func TestCleanText_KeepsTabsAsSpaces(t *testing.T) {
	assert.Equal(t, "a b", CleanText("a\tb"))
}

func TestSplitLines_TrimsButKeepsEmptyLines(t *testing.T) {
	lines := splitLines("one\n  two  \n\nthree")
	assert.Equal(t, []string{"one", "two", "", "three"}, lines)
}
