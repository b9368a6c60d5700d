package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValueAndScan(t *testing.T) {
	val, err := StringList{"C++", "C#"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["C++","C#"]`, val)

	var scanned StringList
	require.NoError(t, scanned.Scan(`["C++","C#"]`))
	assert.Equal(t, StringList{"C++", "C#"}, scanned)

	// A nil list still serializes to an empty array, never null.
	val, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)

	var empty StringList
	require.NoError(t, empty.Scan(`[]`))
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	var fromNull StringList
	require.NoError(t, fromNull.Scan(nil))
	assert.NotNil(t, fromNull)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, SkillCategoryTechnical.Valid())
	assert.True(t, SkillCategorySoft.Valid())
	assert.False(t, SkillCategory("magic").Valid())
	assert.False(t, SkillCategory("").Valid())

	assert.True(t, ProficiencyExpert.Valid())
	assert.False(t, ProficiencyLevel("legendary").Valid())

	assert.True(t, TypeAward.Valid())
	assert.True(t, TypeCertification.Valid())
	assert.False(t, AwardCertificationType("diploma").Valid())
}

func TestTimestampParsing(t *testing.T) {
	var stamp Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2020-01-15"`), &stamp))
	assert.Equal(t, time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), stamp.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2020-01-15T10:30:00Z"`), &stamp))
	assert.Equal(t, time.Date(2020, 1, 15, 10, 30, 0, 0, time.UTC), stamp.Time)

	assert.Error(t, json.Unmarshal([]byte(`"15/01/2020"`), &stamp))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &stamp))
}

func TestOptionalTriState(t *testing.T) {
	var in struct {
		Name  Optional[string] `json:"name"`
		Phone Optional[string] `json:"phone"`
		Note  Optional[string] `json:"note"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane","phone":null}`), &in))

	assert.True(t, in.Name.Set)
	assert.True(t, in.Name.Valid)
	assert.Equal(t, "Jane", in.Name.Value)

	assert.True(t, in.Phone.Set, "explicit null still counts as present")
	assert.False(t, in.Phone.Valid)

	assert.False(t, in.Note.Set, "absent field stays unset")
}

func TestEmailAndURLValidation(t *testing.T) {
	assert.True(t, validEmail("jane@example.com"))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail("Jane Doe <jane@example.com>"))
	assert.False(t, validEmail(""))

	assert.True(t, validURL("https://example.com/path"))
	assert.True(t, validURL("http://localhost:3000"))
	assert.False(t, validURL("example.com/path"))
	assert.False(t, validURL("/relative/path"))
}
