// Package values_test verifies Catalog construction and its range queries.
package values_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rcmb/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCatalog_SortsInput verifies that input order does not matter and
// that the caller's slice is left untouched.
func TestNewCatalog_SortsInput(t *testing.T) {
	in := []float64{470, 100, 220}
	c, err := values.NewCatalog(in)
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 220, 470}, c.Values())
	assert.Equal(t, []float64{470, 100, 220}, in, "input must not be reordered")
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 100.0, c.Min())
	assert.Equal(t, 470.0, c.Max())
}

// TestNewCatalog_Rejects covers every class of invalid element value.
func TestNewCatalog_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
	}{
		{"empty", nil},
		{"zero", []float64{0, 100}},
		{"negative", []float64{-1, 100}},
		{"nan", []float64{math.NaN()}},
		{"inf", []float64{100, math.Inf(1)}},
		{"duplicate", []float64{100, 220, 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := values.NewCatalog(tc.in)
			assert.ErrorIs(t, err, values.ErrInvalidValueList)
		})
	}
}

// TestMustCatalog_Panics ensures static tables fail loudly.
func TestMustCatalog_Panics(t *testing.T) {
	assert.Panics(t, func() { values.MustCatalog([]float64{1, 1}) })
	assert.NotPanics(t, func() { values.MustCatalog([]float64{1, 2}) })
}

// TestCatalog_Range checks closed-interval semantics and empty windows.
func TestCatalog_Range(t *testing.T) {
	c := values.MustCatalog([]float64{100, 220, 470, 1000, 2200})

	assert.Equal(t, []float64{220, 470, 1000}, c.Range(220, 1000))
	assert.Equal(t, []float64{220, 470}, c.Range(150, 999))
	assert.Equal(t, []float64{100, 220, 470, 1000, 2200}, c.Range(0, math.Inf(1)))
	assert.Empty(t, c.Range(230, 460), "no value inside the window")
	assert.Empty(t, c.Range(1000, 100), "inverted window")
	assert.Empty(t, c.Range(3000, 4000), "window above the catalog")
}

// TestCatalog_Nearest checks clamping at both ends and tie-breaking.
func TestCatalog_Nearest(t *testing.T) {
	c := values.MustCatalog([]float64{100, 200, 470})

	assert.Equal(t, 100.0, c.Nearest(1))
	assert.Equal(t, 470.0, c.Nearest(1e9))
	assert.Equal(t, 200.0, c.Nearest(200))
	assert.Equal(t, 200.0, c.Nearest(260))
	assert.Equal(t, 470.0, c.Nearest(400))
	assert.Equal(t, 100.0, c.Nearest(150), "exact tie resolves to the smaller value")
}
