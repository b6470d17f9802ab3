package models

// Unknown is the value of a metadata field whose pattern did not match.
const Unknown = "Unknown"

// FileMetadata holds the fields derived from a source file name.
type FileMetadata struct {
	// BannerName is the text before the first underscore.
	BannerName string `json:"banner_name"`
	// Week is the number following "WK".
	Week string `json:"week"`
	// PRFNumber is the number following "PRF".
	PRFNumber string `json:"prf_number"`
	// Page is the token following "_P".
	Page string `json:"page"`
}
