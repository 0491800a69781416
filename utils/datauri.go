package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeImageDataURI re-encodes raw image bytes as a self-contained inline
// data URI. The MIME subtype comes from the filename extension, defaulting to
// jpg when the name carries none.
func EncodeImageDataURI(filename string, content []byte) string {
	extension := "jpg"
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		extension = filename[idx+1:]
	}
	encoded := base64.StdEncoding.EncodeToString(content)
	return fmt.Sprintf("data:image/%s;base64,%s", extension, encoded)
}
