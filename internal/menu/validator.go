package menu

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
)

// The published menu is a single curated JSON document.
var allowedExt = map[string]bool{
	".json": true,
}

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}

// ValidateDocument checks that an uploaded payload parses into the
// mess → day → meal shape before it is published.
func ValidateDocument(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.New("menu document is not valid JSON")
	}
	if len(doc) == 0 {
		return errors.New("menu document has no messes")
	}
	return nil
}
