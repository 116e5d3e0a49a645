package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawSkillsFromList(t *testing.T) {
	var skills RawSkills
	require.NoError(t, json.Unmarshal([]byte(`["Go","Mongo","Redis"]`), &skills))
	assert.Equal(t, RawSkills{"Go", "Mongo", "Redis"}, skills)
}

func TestRawSkillsFromDelimitedString(t *testing.T) {
	var skills RawSkills
	require.NoError(t, json.Unmarshal([]byte(`"Go, Mongo,Redis"`), &skills))
	assert.Equal(t, RawSkills{" Go", " Mongo", " Redis"}, skills)
}

// Both wire shapes must land on equivalent lists, modulo the leading
// space the string form has always carried.
func TestRawSkillsShapesAreEquivalent(t *testing.T) {
	var fromString, fromList RawSkills
	require.NoError(t, json.Unmarshal([]byte(`"a, b, c"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`["a","b","c"]`), &fromList))

	require.Len(t, fromString, len(fromList))
	for i := range fromList {
		assert.Equal(t, " "+fromList[i], fromString[i])
	}
}

// An empty or blank string carries no skills, so the required-field
// check downstream still fires instead of storing one blank entry.
func TestRawSkillsEmptyStringIsEmptyList(t *testing.T) {
	var skills RawSkills
	require.NoError(t, json.Unmarshal([]byte(`""`), &skills))
	assert.Empty(t, skills)

	skills = nil
	require.NoError(t, json.Unmarshal([]byte(`"   "`), &skills))
	assert.Empty(t, skills)
}

func TestRawSkillsRejectsOtherShapes(t *testing.T) {
	var skills RawSkills
	assert.Error(t, json.Unmarshal([]byte(`42`), &skills))
}
