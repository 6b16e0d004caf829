// Package doctype resolves the document category from the ranked hints
// available for an upload: the extraction model's classification, the
// caller-supplied metadata type, and finally the uploaded file's name.
package doctype

import (
	"strings"

	"github.com/veriflowhq/veriflow/internal/core/model"
)

// Resolve picks the document category. The first matching tier wins:
// llmHint, then metadataHint, then filename substring heuristics. Empty
// inputs never match and fall through to the next tier; when nothing
// matches the category is "other".
func Resolve(metadataHint, llmHint, fileName string) model.DocumentCategory {
	if c, ok := knownCategory(llmHint); ok {
		return c
	}
	if c, ok := knownCategory(metadataHint); ok {
		return c
	}

	name := strings.ToLower(fileName)
	switch {
	case strings.Contains(name, "passport"):
		return model.CategoryPassport
	case strings.Contains(name, "id"), strings.Contains(name, "card"):
		return model.CategoryNationalID
	case strings.Contains(name, "driving"), strings.Contains(name, "license"), strings.Contains(name, "dl"):
		return model.CategoryDrivingLicense
	}

	return model.CategoryOther
}

func knownCategory(hint string) (model.DocumentCategory, bool) {
	switch c := model.DocumentCategory(normalize(hint)); c {
	case model.CategoryPassport, model.CategoryNationalID, model.CategoryDrivingLicense:
		return c, true
	}
	return "", false
}

func normalize(hint string) string {
	return strings.ReplaceAll(strings.ToLower(hint), " ", "_")
}
