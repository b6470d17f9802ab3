// Package parser provides the pure transformations of annotation extraction:
// file name metadata, comment classification, and row building.
package parser

import (
	"path/filepath"
	"regexp"

	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/models"
)

var (
	bannerPattern = regexp.MustCompile(`^(.+?)_`)
	weekPattern   = regexp.MustCompile(`W[Kk](\d+)`)
	prfPattern    = regexp.MustCompile(`PRF(\d+)`)
	pagePattern   = regexp.MustCompile(`_P(\d+|[A-Z]\d+)`)
)

// ParseFilename extracts banner name, week, PRF number, and page from a file name.
// Fields whose pattern does not match are set to models.Unknown.
func ParseFilename(name string) models.FileMetadata {
	base := filepath.Base(name)
	return models.FileMetadata{
		BannerName: firstGroup(bannerPattern, base),
		Week:       firstGroup(weekPattern, base),
		PRFNumber:  firstGroup(prfPattern, base),
		Page:       firstGroup(pagePattern, base),
	}
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return models.Unknown
	}
	return m[1]
}
