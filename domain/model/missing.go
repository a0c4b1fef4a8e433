package model

import "time"

// MissingStatistic counts failed catalog lookups for one (website, bangumi_id).
// SubjectID, Title and Href are filled in when someone reports the mapping.
type MissingStatistic struct {
	Website   Website `json:"website"              bson:"website"`
	BangumiID string  `json:"bangumi_id"           bson:"bangumi_id"`
	Times     int64   `json:"times"                bson:"times"`
	SubjectID string  `json:"subject_id,omitempty" bson:"subject_id,omitempty"`
	Title     string  `json:"title,omitempty"      bson:"title,omitempty"`
	Href      string  `json:"href,omitempty"       bson:"href,omitempty"`
}

// MissingReport is the append-only record of a user report.
type MissingReport struct {
	Website   Website   `json:"website"    bson:"website"`
	BangumiID string    `json:"bangumiID"  bson:"bangumiID"`
	SubjectID string    `json:"subjectID"  bson:"subjectID"`
	Title     string    `json:"title"      bson:"title"`
	Href      string    `json:"href"       bson:"href"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// SubjectFilter narrows statistics by whether a subject id is known.
type SubjectFilter int

const (
	SubjectAny SubjectFilter = iota
	SubjectKnown
	SubjectUnknown
)

// ParseSubjectFilter maps the subject_id query flag; anything other than
// "true" or "false" means no filter.
func ParseSubjectFilter(s string) SubjectFilter {
	switch s {
	case "true":
		return SubjectKnown
	case "false":
		return SubjectUnknown
	default:
		return SubjectAny
	}
}
