package parser

import (
	"strings"

	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/models"
)

// NoContent replaces an empty annotation body.
const NoContent = "No content"

// GDPrefix marks a reviewer note that goes to the GD column.
const GDPrefix = "GD:"

// PopupSubtype is the annotation subtype skipped during extraction.
const PopupSubtype = "Popup"

// keywordRules are checked in order; the first match wins.
var keywordRules = []struct {
	keyword   string
	errorType models.ErrorType
}{
	{"price", models.ErrorTypePricePoint},
	{"alignment", models.ErrorTypeOverallLayout},
	{"image", models.ErrorTypeImageUsage},
}

// Classify assigns a category to an annotation's text content.
func Classify(content string) models.ErrorType {
	lower := strings.ToLower(content)
	for _, rule := range keywordRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.errorType
		}
	}
	return models.ErrorTypeProductDescription
}

// SplitGD routes content to either the Errors or the GD column.
// Content starting with "GD:" yields the trimmed remainder as gd.
func SplitGD(content string) (errs, gd string) {
	if rest, ok := strings.CutPrefix(content, GDPrefix); ok {
		return "", strings.TrimSpace(rest)
	}
	return content, ""
}

// IsPopup reports whether an annotation subtype mirrors another annotation.
func IsPopup(subtype string) bool {
	return subtype == PopupSubtype
}
