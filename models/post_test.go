package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello World":        "hello-world",
		"Go  Generics":       "go--generics",
		"Already-slugged":    "already-slugged",
		"What's new in 1.23": "what's-new-in-1.23",
		"":                   "",
	}

	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestProjectDetailEncodesEmptyTags(t *testing.T) {
	detail := ProjectDetail{Project: Project{ID: 7, Title: "Site"}, Tags: []Tag{}}

	raw, err := json.Marshal(detail)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(7), decoded["id"])
	assert.Equal(t, "Site", decoded["title"])
	assert.Equal(t, []any{}, decoded["tags"])
	assert.Nil(t, decoded["live_url"])
}
