package uploads

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	raw := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("pngbytes"))

	img, err := DecodeDataURL(raw)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, []byte("pngbytes"), img.Data)
}

func TestDecodeDataURLRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"https://example.com/a.png",
		"data:image/png;base64",
		"data:image/png,plaintext",
		"data:image/png;base64,!!!not-base64!!!",
	} {
		_, err := DecodeDataURL(raw)
		assert.Error(t, err, raw)
	}
}

func TestDecodeDataURLDefaultsContentType(t *testing.T) {
	raw := "data:;base64," + base64.StdEncoding.EncodeToString([]byte("x"))
	img, err := DecodeDataURL(raw)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", img.ContentType)
}

func TestExtPrefersFileName(t *testing.T) {
	assert.Equal(t, ".jpg", Image{FileName: "photo.JPG", ContentType: "image/png"}.Ext())
	assert.Equal(t, ".bin", Image{}.Ext())
}

func TestTotalSize(t *testing.T) {
	images := []Image{
		{Data: make([]byte, 100)},
		{Data: make([]byte, 250)},
	}
	assert.Equal(t, int64(350), TotalSize(images))
	assert.Equal(t, int64(0), TotalSize(nil))
}
