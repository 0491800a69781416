package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeImageDataURI(t *testing.T) {
	content := []byte{0x89, 0x50, 0x4e, 0x47}
	encoded := base64.StdEncoding.EncodeToString(content)

	require.Equal(t, "data:image/png;base64,"+encoded, EncodeImageDataURI("logo.png", content))
	require.Equal(t, "data:image/jpeg;base64,"+encoded, EncodeImageDataURI("photo.holiday.jpeg", content))

	// No extension falls back to jpg.
	require.Equal(t, "data:image/jpg;base64,"+encoded, EncodeImageDataURI("raw-bytes", content))
	require.Equal(t, "data:image/jpg;base64,"+encoded, EncodeImageDataURI("trailing.", content))
}
