package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroup(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		min     int
		max     int
		wantErr bool
	}{
		{name: "unrestricted", size: 3, min: 0, max: 3},
		{name: "at least one", size: 3, min: 1, max: 3},
		{name: "exact", size: 2, min: 2, max: 2},
		{name: "empty group", size: 0, min: 0, max: 0},
		{name: "negative minimum", size: 3, min: -1, max: 3, wantErr: true},
		{name: "maximum above size", size: 3, min: 0, max: 4, wantErr: true},
		{name: "minimum above maximum", size: 3, min: 2, max: 1, wantErr: true},
		{name: "negative size", size: -1, min: 0, max: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGroup(tt.name, tt.size, tt.min, tt.max)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidGroup)
				assert.Contains(t, err.Error(), tt.name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Group[string]{Name: tt.name, Size: tt.size, Minimum: tt.min, Maximum: tt.max}, g)
		})
	}
}

func TestGroupValidateMessageCarriesValues(t *testing.T) {
	err := Group[string]{Name: "Key Card", Size: 3, Minimum: -1, Maximum: 3}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Key Card")
	assert.Contains(t, err.Error(), "-1")
}

func TestResizers(t *testing.T) {
	g := Group[string]{Name: "Starter", Size: 3, Minimum: 1, Maximum: 3}

	shrunk := Shrink(g, 1)
	assert.Equal(t, Group[string]{Name: "Starter", Size: 1, Minimum: 1, Maximum: 1}, shrunk)
	require.NoError(t, shrunk.Validate())

	open := Unbounded(g, 2)
	assert.Equal(t, Group[string]{Name: "Starter", Size: 2, Minimum: 0, Maximum: 2}, open)
}

func TestGroupString(t *testing.T) {
	assert.Equal(t, "Key Card[1..3]/3", Group[string]{Name: "Key Card", Size: 3, Minimum: 1, Maximum: 3}.String())
}
