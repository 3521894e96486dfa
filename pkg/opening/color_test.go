package opening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorChannels(t *testing.T) {
	c := RGB(0x87, 0xce, 0xeb)
	assert.Equal(t, Color(0x87ceeb), c)

	r, g, b := c.Channels()
	assert.Equal(t, uint8(0x87), r)
	assert.Equal(t, uint8(0xce), g)
	assert.Equal(t, uint8(0xeb), b)
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, c := range []Color{0x000000, 0xffffff, 0xff0000, 0x87ceeb, 0x123456} {
		parsed, err := ParseColor(c.Hex())
		require.NoError(t, err)
		assert.Equal(t, c, parsed, "hex %s", c.Hex())
	}
	assert.Equal(t, "#ff0000", Color(0xff0000).String())
}

func TestParseColorErrors(t *testing.T) {
	for _, s := range []string{"", "blue", "0xzz", "0x1ffffff"} {
		_, err := ParseColor(s)
		assert.Error(t, err, "ParseColor(%q)", s)
	}
}
