package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTechStack(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "React, Node.js, SQLite", []string{"React", "Node.js", "SQLite"}},
		{"messy whitespace and empties", "React,  Node.js ,,  ", []string{"React", "Node.js"}},
		{"single tag", "Go", []string{"Go"}},
		{"empty input", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"duplicates kept", "Go,Go", []string{"Go", "Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTechStack(tt.input))
		})
	}
}

func TestTechStackStringRoundTrip(t *testing.T) {
	tags := []string{"React", "Node.js", "SQLite"}
	assert.Equal(t, tags, ParseTechStack(TechStackString(tags)))
}

func TestDraftNormalize(t *testing.T) {
	d := Draft{ItemType: ItemFile, Status: StatusIdea}
	d.Normalize()
	assert.Equal(t, StatusCompleted, d.Status, "reference files are always deployed")

	d = Draft{ItemType: ItemApp, Status: StatusIdea}
	d.Normalize()
	assert.Equal(t, StatusIdea, d.Status, "apps keep their chosen status")
}
