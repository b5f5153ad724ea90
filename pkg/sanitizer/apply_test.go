package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vetform/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []sanitizer.Transform
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  ab-1  ",
			transforms: []sanitizer.Transform{sanitizer.Trim},
			expected:   "ab-1",
		},
		{
			name:       "applies transforms in sequence",
			input:      "  ab-1  ",
			transforms: []sanitizer.Transform{sanitizer.Trim, sanitizer.ToUpper},
			expected:   "AB-1",
		},
		{
			name:       "handles empty transforms",
			input:      "as is",
			transforms: nil,
			expected:   "as is",
		},
		{
			name:       "skips nil transforms",
			input:      "x",
			transforms: []sanitizer.Transform{nil, sanitizer.ToUpper},
			expected:   "X",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.PhoneInput, sanitizer.Trim)
	assert.Equal(t, "+56 9 1234", clean(" +56 9 1234abc "))
	assert.Equal(t, "", clean("abc"))
}
