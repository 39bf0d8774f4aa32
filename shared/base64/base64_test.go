package base64_test

import (
	"testing"

	"hotelinv/shared/base64"

	"github.com/stretchr/testify/assert"
)

func TestGetContentType(t *testing.T) {
	tests := map[string]string{
		"data:image/png;base64,iVBORw0KGgo=":  "image/png",
		"data:image/webp;base64,UklGRg==":     "image/webp",
		"data:text/plain;base64,SGVsbG8=":     "text/plain",
		"data:;base64,SGVsbG8=":               "",
		"data:image/png,raw":                  "",
		"image/png;base64,iVBORw0KGgo=":       "",
		"https://cdn.example.com/booking.png": "",
		"":                                    "",
	}

	for input, want := range tests {
		assert.Equal(t, want, base64.GetContentType(input), input)
	}
}

func TestParse(t *testing.T) {
	parsed, err := base64.Parse("data:text/plain;base64,SGVsbG8gV29ybGQ=")
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", parsed.ContentType)
	assert.Equal(t, "Hello World", string(parsed.Data))
	assert.Equal(t, len(parsed.Data), base64.DecodedLen("data:text/plain;base64,SGVsbG8gV29ybGQ="))

	_, err = base64.Parse("plain text")
	assert.ErrorIs(t, err, base64.ErrNotDataURL)

	_, err = base64.Parse("data:image/png;base64,not base64!")
	assert.Error(t, err)
}
