// Package base64 reads RFC 2397 data URLs of the form data:<type>;base64,<payload>.
package base64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	scheme = "data:"
	marker = ";base64,"
)

var ErrNotDataURL = errors.New("not a base64 data url")

type DataURL struct {
	ContentType string
	Data        []byte
}

// GetContentType returns the media type of a data URL, or "" when s is not one.
func GetContentType(s string) string {
	contentType, _, ok := split(s)
	if !ok {
		return ""
	}

	return contentType
}

// DecodedLen is the payload size in bytes without decoding it.
func DecodedLen(s string) int {
	_, payload, ok := split(s)
	if !ok {
		return len(s)
	}

	return base64.StdEncoding.DecodedLen(len(payload)) - strings.Count(payload[max(0, len(payload)-2):], "=")
}

func Parse(s string) (DataURL, error) {
	contentType, payload, ok := split(s)
	if !ok {
		return DataURL{}, ErrNotDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return DataURL{}, fmt.Errorf("decode %s payload: %w", contentType, err)
	}

	return DataURL{ContentType: contentType, Data: data}, nil
}

func split(s string) (contentType, payload string, ok bool) {
	rest, found := strings.CutPrefix(s, scheme)
	if !found {
		return "", "", false
	}

	contentType, payload, found = strings.Cut(rest, marker)
	if !found || contentType == "" {
		return "", "", false
	}

	return contentType, payload, true
}
