package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"punctuation collapses", "Go, Echo & PostgreSQL!", "go-echo-postgresql"},
		{"leading and trailing junk", "  --Trimmed--  ", "trimmed"},
		{"digits kept", "Top 10 Tips 2025", "top-10-tips-2025"},
		{"unicode letters kept", "Привет Мир", "привет-мир"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

func TestMakeUnique(t *testing.T) {
	s := MakeUnique("my-post")

	assert.True(t, strings.HasPrefix(s, "my-post-"))
	assert.NotEqual(t, "my-post", s)
}
