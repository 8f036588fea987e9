package render

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAtlas(t *testing.T) {
	atlas, err := NewAtlas(ebiten.NewImage(64, 48), 16, 24)
	require.NoError(t, err)

	assert.Equal(t, 8, atlas.Len())
	w, h := atlas.FrameSize()
	assert.Equal(t, 16, w)
	assert.Equal(t, 24, h)
}

func TestNewAtlas_Invalid(t *testing.T) {
	_, err := NewAtlas(ebiten.NewImage(8, 8), 16, 16)
	assert.Error(t, err)

	_, err = NewAtlas(ebiten.NewImage(8, 8), 0, 8)
	assert.Error(t, err)
}

func TestAtlas_FrameRect(t *testing.T) {
	atlas, err := NewAtlas(ebiten.NewImage(64, 48), 16, 24)
	require.NoError(t, err)

	tests := []struct {
		index int
		want  image.Rectangle
		ok    bool
	}{
		{0, image.Rect(0, 0, 16, 24), true},
		{3, image.Rect(48, 0, 64, 24), true},
		{5, image.Rect(16, 24, 32, 48), true},
		{8, image.Rectangle{}, false},
		{-1, image.Rectangle{}, false},
	}

	for _, tt := range tests {
		r, ok := atlas.FrameRect(tt.index)
		assert.Equal(t, tt.ok, ok, "index %d", tt.index)
		assert.Equal(t, tt.want, r, "index %d", tt.index)
	}
}

func TestAtlas_Frame(t *testing.T) {
	atlas := NewPlaceholderAtlas(16, 16, 4)

	require.Equal(t, 4, atlas.Len())
	frame := atlas.Frame(2)
	require.NotNil(t, frame)
	assert.Equal(t, image.Rect(32, 0, 48, 16), frame.Bounds())
	assert.Nil(t, atlas.Frame(4))
}

func TestPlaceholderColor(t *testing.T) {
	assert.Equal(t, PlaceholderColor(0), PlaceholderColor(6))
	assert.NotEqual(t, PlaceholderColor(0), PlaceholderColor(1))
}
