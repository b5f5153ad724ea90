package validator_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vetform/pkg/validator"
)

func TestParseFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{"12", 12},
		{"  12.5", 12.5},
		{"12.5kg", 12.5},
		{"-3", -3},
		{"+0.01", 0.01},
		{".5", 0.5},
		{"1.", 1},
		{"1e3", 1000},
		{"1e", 1},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := validator.ParseFloat(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("infinity", func(t *testing.T) {
		t.Parallel()
		got, err := validator.ParseFloat("Infinity")
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1))
	})

	t.Run("overflow becomes infinity", func(t *testing.T) {
		t.Parallel()
		got, err := validator.ParseFloat("1e400")
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1))
	})

	for _, input := range []string{"", "   ", "abc", "kg12", "-", "."} {
		t.Run("rejects "+input, func(t *testing.T) {
			t.Parallel()
			_, err := validator.ParseFloat(input)
			assert.ErrorIs(t, err, validator.ErrNotANumber)
		})
	}
}

func TestParseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int64
	}{
		{"7", 7},
		{" 42 ", 42},
		{"3.7", 3},
		{"-1", -1},
		{"26años", 26},
		{"0x1F", 31},
		{"-0XfF", -255},
		{"0x1Gato", 1},
		{"007", 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := validator.ParseInt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, input := range []string{"", "x", ".5", "+", "0x", "-0xZ"} {
		t.Run("rejects "+input, func(t *testing.T) {
			t.Parallel()
			_, err := validator.ParseInt(input)
			assert.ErrorIs(t, err, validator.ErrNotANumber)
		})
	}
}

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CLT", -3*60*60)

	t.Run("datetime-local in given location", func(t *testing.T) {
		t.Parallel()
		got, err := validator.ParseDateTime("2026-10-20T09:30", loc)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2026, 10, 20, 9, 30, 0, 0, loc)))
		assert.Equal(t, loc, got.Location())
	})

	t.Run("with seconds and space separator", func(t *testing.T) {
		t.Parallel()
		got, err := validator.ParseDateTime("2026-10-20 09:30:15", loc)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2026, 10, 20, 9, 30, 15, 0, loc)))
	})

	t.Run("RFC3339 keeps its offset", func(t *testing.T) {
		t.Parallel()
		got, err := validator.ParseDateTime("2026-10-20T12:00:00Z", loc)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("bare date is UTC midnight", func(t *testing.T) {
		t.Parallel()
		got, err := validator.ParseDateTime("2026-10-20", loc)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("nil location defaults to local", func(t *testing.T) {
		t.Parallel()
		got, err := validator.ParseDateTime("2026-10-20T09:30", nil)
		require.NoError(t, err)
		assert.Equal(t, time.Local, got.Location())
	})

	for _, input := range []string{"", "mañana", "20/10/2026 09:30", "2026-13-01T10:00"} {
		t.Run("rejects "+input, func(t *testing.T) {
			t.Parallel()
			_, err := validator.ParseDateTime(input, loc)
			assert.ErrorIs(t, err, validator.ErrInvalidDateTime)
		})
	}
}
