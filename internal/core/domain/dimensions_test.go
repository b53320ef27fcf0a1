package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveDPI(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{
			name: "missing",
			raw:  "",
			want: 96,
		},
		{
			name: "valid integer",
			raw:  "300",
			want: 300,
		},
		{
			name: "valid fraction",
			raw:  "72.5",
			want: 72.5,
		},
		{
			name: "not a number",
			raw:  "foo",
			want: 96,
		},
		{
			name: "zero",
			raw:  "0",
			want: 96,
		},
		{
			name: "negative",
			raw:  "-300",
			want: 96,
		},
		{
			name: "nan literal",
			raw:  "NaN",
			want: 96,
		},
		{
			name: "infinity literal",
			raw:  "+Inf",
			want: 96,
		},
		{
			name: "overflow",
			raw:  "1e999",
			want: 96,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, EffectiveDPI(tc.raw), 0)
		})
	}
}

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		name       string
		intrinsicW float64
		intrinsicH float64
		dpi        float64
		want       Dimensions
		wantErr    bool
	}{
		{
			name:       "default dpi keeps intrinsic size",
			intrinsicW: 100,
			intrinsicH: 50,
			dpi:        96,
			want:       Dimensions{Width: 100, Height: 50, DotsPerMeter: 3780},
		},
		{
			name:       "double dpi doubles pixels",
			intrinsicW: 100,
			intrinsicH: 50,
			dpi:        192,
			want:       Dimensions{Width: 200, Height: 100, DotsPerMeter: 7559},
		},
		{
			name:       "quarter dpi rounds to nearest",
			intrinsicW: 100,
			intrinsicH: 50,
			dpi:        24,
			want:       Dimensions{Width: 25, Height: 13, DotsPerMeter: 945},
		},
		{
			name:       "fractional scale",
			intrinsicW: 100,
			intrinsicH: 50,
			dpi:        150,
			want:       Dimensions{Width: 156, Height: 78, DotsPerMeter: 5906},
		},
		{
			name:       "print resolution",
			intrinsicW: 100,
			intrinsicH: 50,
			dpi:        300,
			want:       Dimensions{Width: 313, Height: 156, DotsPerMeter: 11811},
		},
		{
			name:       "high resolution",
			intrinsicW: 100,
			intrinsicH: 50,
			dpi:        600,
			want:       Dimensions{Width: 625, Height: 313, DotsPerMeter: 23622},
		},
		{
			name:       "width degenerates to zero",
			intrinsicW: 1,
			intrinsicH: 100,
			dpi:        24,
			wantErr:    true,
		},
		{
			name:       "zero intrinsic size",
			intrinsicW: 0,
			intrinsicH: 100,
			dpi:        96,
			wantErr:    true,
		},
		{
			name:       "one pixel survives",
			intrinsicW: 1,
			intrinsicH: 200,
			dpi:        96,
			want:       Dimensions{Width: 1, Height: 200, DotsPerMeter: 3780},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dims, err := ResolveDimensions(tc.intrinsicW, tc.intrinsicH, tc.dpi)
			if tc.wantErr {
				require.Error(t, err)
				var validation *ValidationError
				require.ErrorAs(t, err, &validation)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, dims)
			}
		})
	}
}
