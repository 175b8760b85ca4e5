package content

import (
	"encoding/json"

	"timo-intelligence-be/internal/model"
)

var heroFields = []string{"tag", "titleLine1", "titleLine2", "description", "buttonPrimary", "buttonSecondary"}

var solutionFields = []string{"id", "title", "subtitle", "description", "detailTitle", "detailText", "image", "iconName"}

var aboutFields = []string{
	"tag", "titleLine1", "titleLine2", "paragraph1", "paragraph2", "paragraph3",
	"feature1Title", "feature1Description", "feature2Title", "feature2Description",
	"imageUrl", "imageCaption", "imageSubcaption",
}

var partnersFields = []string{
	"title", "subtitle", "description", "feature1Title", "feature1Description",
	"feature2Title", "feature2Description", "feature3Title", "feature3Description",
}

var contactFields = []string{
	"title", "introText", "addressStreet", "addressPostalCode", "addressCity",
	"addressNote", "email", "phone", "formTitle", "buttonText",
}

func hasStringFields(v any, fields []string) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, f := range fields {
		if _, isStr := obj[f].(string); !isStr {
			return false
		}
	}
	return true
}

func validSolution(v any) bool {
	if !hasStringFields(v, solutionFields) {
		return false
	}
	obj := v.(map[string]any)
	return model.IsValidIconName(model.IconName(obj["iconName"].(string)))
}

// ValidateCandidate is the structural gate applied to every document
// loaded from the remote or local store before it is trusted. Both
// stores can hold partially-written, stale-schema or corrupted data;
// any missing field, non-string value or empty solutions list rejects
// the candidate. No side effects.
func ValidateCandidate(candidate any) bool {
	root, ok := candidate.(map[string]any)
	if !ok || root == nil {
		return false
	}

	if !hasStringFields(root["hero"], heroFields) {
		return false
	}

	solutions, ok := root["solutions"].([]any)
	if !ok || len(solutions) == 0 {
		return false
	}
	for _, sol := range solutions {
		if !validSolution(sol) {
			return false
		}
	}

	if !hasStringFields(root["about"], aboutFields) {
		return false
	}
	if !hasStringFields(root["partners"], partnersFields) {
		return false
	}
	return hasStringFields(root["contact"], contactFields)
}

// DecodeDocument parses raw JSON, validates it structurally and decodes
// it into the typed document. Returns nil when the payload does not
// hold a complete content document.
func DecodeDocument(data []byte) *model.ContentDocument {
	var candidate any
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil
	}
	if !ValidateCandidate(candidate) {
		return nil
	}

	var doc model.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return &doc
}
