package questions

import (
	"context"
	"database/sql"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"q.yaml", FormatYAML, false},
		{"q.YML", FormatYAML, false},
		{"q.json", FormatJSON, false},
		{"q.txt", FormatText, false},
		{"q.db", FormatSQLite, false},
		{"q.sqlite", FormatSQLite, false},
		{"q.csv", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "q.yaml", `
title: Basics
questions:
  - text: Q1
    answer: true
  - text: Q2
    answer: false
    explanation: Because.
`)
	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Basics", set.Title)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, Question{Text: "Q1", Answer: true}, set.Questions[0])
	assert.Equal(t, "Because.", set.Questions[1].Explanation)
}

func TestLoad_YAMLUnknownField(t *testing.T) {
	path := writeFile(t, "q.yaml", "questions:\n  - text: Q1\n    answer: true\n    extra: 1\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestLoad_YAMLMultipleDocuments(t *testing.T) {
	path := writeFile(t, "q.yaml", "questions:\n  - text: Q1\n    answer: true\n---\nquestions: []\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple documents")
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "q.json", `{"questions":[{"text":"Q1","answer":true},{"text":"Q2","answer":false}]}`)
	set, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	q, err := set.At(1)
	require.NoError(t, err)
	assert.Equal(t, "Q2", q.Text)
	assert.False(t, q.Answer)
}

func TestLoad_JSONUnknownField(t *testing.T) {
	path := writeFile(t, "q.json", `{"questions":[],"bogus":true}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_Text(t *testing.T) {
	path := writeFile(t, "q.txt", `
# comment
"Is the sky blue?" 1
"Is 2 + 2 = 5?" 0
"He said "hi" to me" 1
`)
	set, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	assert.True(t, set.Questions[0].Answer)
	assert.False(t, set.Questions[1].Answer)
	assert.Equal(t, `He said "hi" to me`, set.Questions[2].Text)
}

func TestParseText_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no quotes", "Is it? 1"},
		{"no closing quote", `"Is it? 1`},
		{"no answer", `"Is it?"`},
		{"bad answer", `"Is it?" 2`},
		{"word answer", `"Is it?" yes`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), FormatText)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestLoad_EmptySet(t *testing.T) {
	path := writeFile(t, "q.yaml", "questions: []\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptySet)
}

func TestLoad_BlankText(t *testing.T) {
	path := writeFile(t, "q.json", `{"questions":[{"text":"  ","answer":true}]}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 1: text is empty")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, WriteSQLite(context.Background(), db, &Set{Questions: []Question{
		{Text: "First", Answer: true},
		{Text: "Second", Answer: false, Explanation: "Nope."},
	}}))
	require.NoError(t, db.Close())

	set, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, "First", set.Questions[0].Text)
	assert.True(t, set.Questions[0].Answer)
	assert.Equal(t, "Nope.", set.Questions[1].Explanation)
}

func TestLoad_SQLiteWithoutExplanations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	for _, stmt := range []string{
		`CREATE TABLE questions (position INTEGER, text TEXT, answer INTEGER)`,
		`INSERT INTO questions VALUES (2, 'Later', 0)`,
		`INSERT INTO questions VALUES (1, 'Earlier', 1)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	set, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, Question{Text: "Earlier", Answer: true}, set.Questions[0])
	assert.Equal(t, Question{Text: "Later", Answer: false}, set.Questions[1])
}

func TestMarshal_RoundTrip(t *testing.T) {
	set := Builtin()
	for _, f := range []Format{FormatYAML, FormatJSON} {
		data, err := Marshal(set, f)
		require.NoError(t, err)
		back, err := Parse(data, f)
		require.NoError(t, err, string(f))
		assert.Equal(t, set, back, string(f))
	}
}

func TestSetAt_OutOfRange(t *testing.T) {
	set := Builtin()
	_, err := set.At(set.Len())
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = set.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	var nilSet *Set
	assert.Equal(t, 0, nilSet.Len())
}

func TestShuffle(t *testing.T) {
	set := Builtin()
	rng := rand.New(rand.NewPCG(1, 2))

	out := Shuffle(set, rng, 0)
	require.Equal(t, set.Len(), out.Len())
	assert.ElementsMatch(t, set.Questions, out.Questions)
	assert.Equal(t, "The Earth orbits the Sun.", set.Questions[0].Text, "original must not change")

	limited := Shuffle(set, rng, 2)
	assert.Equal(t, 2, limited.Len())

	over := Shuffle(set, nil, 100)
	assert.Equal(t, set.Len(), over.Len())
}

func TestBuiltinIsValid(t *testing.T) {
	require.NoError(t, Validate(Builtin()))
}

func TestSave_RoundTrip(t *testing.T) {
	set := &Set{Title: "Saved", Questions: []Question{
		{Text: "Ice floats.", Answer: true, Explanation: "It is less dense than water."},
		{Text: "Fire is cold.", Answer: false},
	}}

	for _, name := range []string{"set.yaml", "set.json", "set.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(context.Background(), path, set))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, set.Questions, got.Questions)
		})
	}
}

func TestSave_RejectsText(t *testing.T) {
	err := Save(context.Background(), filepath.Join(t.TempDir(), "set.txt"), Builtin())
	assert.ErrorContains(t, err, "cannot hold explanations")
}
