package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact_BasicFields(t *testing.T) {
	e := newTestExtractor(t)
	text := "Jane Smith\njane.smith@example.com | (555) 123-4567\nlinkedin.com/in/JaneSmith\nAustin, TX"
	lines := splitLines(text)

	info := e.extractContact(text, lines)
	assert.Equal(t, "Jane Smith", info.Name)
	assert.Equal(t, "jane.smith@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "linkedin.com/in/janesmith", info.LinkedIn)
	assert.Equal(t, "Austin, TX", info.Location)
}

func TestExtractContact_LabeledNameWins(t *testing.T) {
	e := newTestExtractor(t)
	text := "Confidential Resume\nName: Jane Doe\nSome Other Heading"
	lines := splitLines(text)

	info := e.extractContact(text, lines)
	assert.Equal(t, "Jane Doe", info.Name)
}

func TestExtractContact_HonorificName(t *testing.T) {
	e := newTestExtractor(t)
	text := "Dr. Maria Garcia\nmaria@example.com"
	lines := splitLines(text)

	info := e.extractContact(text, lines)
	assert.Equal(t, "Maria Garcia", info.Name)
}

func TestExtractContact_InternationalPhone(t *testing.T) {
	e := newTestExtractor(t)
	text := "Reach me at +44 20 7946 0958"

	info := e.extractContact(text, splitLines(text))
	assert.Equal(t, "+44 20 7946 0958", info.Phone)
}

func TestExtractContact_EmptyInput(t *testing.T) {
	e := newTestExtractor(t)

	info := e.extractContact("", nil)
	assert.Empty(t, info.Name)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
}

func TestLikelyName_AcceptsCapitalizedParts(t *testing.T) {
	assert.True(t, likelyName("Jane Smith"))
	assert.True(t, likelyName("Mary-Jane O'Brien"))
	assert.True(t, likelyName("Madonna"))
}

func TestLikelyName_RejectsBoilerplateAndDigits(t *testing.T) {
	assert.False(t, likelyName("Curriculum Vitae"))
	assert.False(t, likelyName("Jane Smith 2024"))
	assert.False(t, likelyName("Software Engineering Resume"))
	assert.False(t, likelyName("Resume"))
	assert.False(t, likelyName("JS"))
}

func TestExtractContact_SingleWordName(t *testing.T) {
	e := newTestExtractor(t)

	text := "Madonna\nmadonna@example.com\n(555) 123-4567"
	info := e.extractContact(text, splitLines(text))
	assert.Equal(t, "Madonna", info.Name)
}
