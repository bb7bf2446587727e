package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_ReplacesConcernWholesale(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "skills.json", `{
		"Maritime": {"Navigation": ["Celestial Navigation", "Radar Operation"]}
	}`)

	store := NewStore()
	require.NoError(t, store.Load(dir))

	// The skills concern is replaced, keys are case-folded.
	assert.Equal(t, []string{"Celestial Navigation", "Radar Operation"}, store.SkillsByIndustry("maritime"))
	assert.Empty(t, store.SkillsByIndustry("technology"), "defaults for the loaded concern are gone")

	// Concerns without a file keep their defaults.
	assert.Contains(t, store.AllJobTitles(), "Software Engineer")
}

func TestLoad_MissingDirEntriesKeepDefaults(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Load(t.TempDir()))

	assert.Contains(t, store.SkillsByIndustry("technology"), "Python")
}

func TestLoad_EmptyDirIsNoop(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Load(""))
	assert.NotEmpty(t, store.AllSkills())
}

func TestLoad_InvalidShapeFailsValidation(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "job_titles.json", `{"technology": "not a list"}`)

	store := NewStore()
	err := store.Load(dir)
	require.Error(t, err)

	var dsErr *DatasetError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, "job_titles.json", dsErr.File)
}

func TestLoad_MalformedJSONFails(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "certifications.json", `{"finance": [`)

	store := NewStore()
	err := store.Load(dir)
	require.Error(t, err)
}

func TestLoad_EducationVocabulary(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "education_keywords.json", `{
		"degree_types": ["bachelor"],
		"institutions": ["university"],
		"fields": ["naval architecture"],
		"honors": ["with honors"]
	}`)

	store := NewStore()
	require.NoError(t, store.Load(dir))
	assert.Equal(t, []string{"naval architecture"}, store.Education().Fields)
}

func TestExport_RoundTrips(t *testing.T) {
	dir := t.TempDir()

	store := NewStore()
	store.AddSkills("technology", "programming", []string{"Zig"})
	require.NoError(t, store.Export(dir))

	for _, name := range []string{
		"skills.json", "job_titles.json", "industries.json",
		"certifications.json", "education_keywords.json",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to be written", name)
	}

	reloaded := NewStore()
	require.NoError(t, reloaded.Load(dir))
	assert.Contains(t, reloaded.SkillsByIndustry("technology"), "Zig")
	assert.ElementsMatch(t, store.Industries(), reloaded.Industries())
}

func TestExport_SafeWithConcurrentWriters(t *testing.T) {
	store := NewStore()
	dir := t.TempDir()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 50 {
			store.AddSkills("technology", "programming", []string{fmt.Sprintf("skill-%d", i)})
		}
	}()
	go func() {
		defer wg.Done()
		for range 50 {
			assert.NoError(t, store.Export(dir))
		}
	}()
	wg.Wait()

	reloaded := NewStore()
	require.NoError(t, reloaded.Load(dir))
}
