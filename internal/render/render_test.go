package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/ninebygo/engine/boardstate"
	"github.com/ninebygo/engine/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_ProducesADecodablePNGOfTheRightSize(t *testing.T) {
	b := boardstate.NewBoard(false)
	var buf bytes.Buffer

	enc := NewEncoder()
	require.NoError(t, enc.Encode(&buf, b))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	wantSize := margin*2 + cellPixels*(geometry.Size-1)
	assert.Equal(t, wantSize, img.Bounds().Dx())
	assert.Equal(t, wantSize, img.Bounds().Dy())
}

// TestEncode_DrawsAStoneAtItsCellCenter places a single black stone and
// checks the pixel at that cell's exact center is black, while a distant
// empty cell's center (a grid intersection in the line colour) is not.
func TestEncode_DrawsAStoneAtItsCellCenter(t *testing.T) {
	b := boardstate.NewBoard(false)
	ok, err := b.PlaceStone(geometry.Black, geometry.Position{Row: 0, Col: 0})
	require.True(t, ok)
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder()
	require.NoError(t, enc.Encode(&buf, b))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	r, g, bl, _ := img.At(margin, margin).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, bl)

	er, eg, ebl, _ := img.At(margin+4*cellPixels, margin+4*cellPixels).RGBA()
	assert.NotZero(t, er)
	assert.NotZero(t, eg)
	assert.NotZero(t, ebl)
}
