package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	mimeType, raw, err := DecodeImageDataURI("data:image/jpeg;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	assert.Equal(t, []byte("fake image bytes"), raw)
}

func TestDecodeImageDataURIPreservesMimeType(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47})

	mimeType, _, err := DecodeImageDataURI("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
}

func TestDecodeImageDataURIBarePayload(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("bare"))

	mimeType, raw, err := DecodeImageDataURI(payload)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	assert.Equal(t, []byte("bare"), raw)
}

func TestDecodeImageDataURIRejectsGarbage(t *testing.T) {
	_, _, err := DecodeImageDataURI("data:image/jpeg;base64,!!not-base64!!")
	assert.Error(t, err)

	_, _, err = DecodeImageDataURI("data:image/jpeg;base64")
	assert.Error(t, err)

	_, _, err = DecodeImageDataURI("")
	assert.Error(t, err)
}
