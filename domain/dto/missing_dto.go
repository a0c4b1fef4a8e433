package dto

import (
	"errors"
	"fmt"
	"time"

	"bgm-auto-tracker/domain/model"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	errBlank       = errors.New("cannot be blank")
	errNotString   = errors.New("must be a string")
	errNotStringer = errors.New("must be a string or a number")
)

// ReportMissingBangumiRequest is a user supplied mapping between a site show
// and a bgm.tv subject.
type ReportMissingBangumiRequest struct {
	BangumiID JSONString `json:"bangumiID"`
	SubjectID JSONString `json:"subjectID"`
	Title     JSONString `json:"title"`
	Href      JSONString `json:"href"`
	Website   JSONString `json:"website"`
}

// Validate returns validation.Errors keyed by JSON field name.
func (r ReportMissingBangumiRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BangumiID, validation.By(required), validation.By(looseString)),
		validation.Field(&r.SubjectID, validation.By(required), validation.By(strictString)),
		validation.Field(&r.Title, validation.By(required), validation.By(strictString)),
		validation.Field(&r.Href, validation.By(required), validation.By(strictString)),
		validation.Field(&r.Website, validation.By(required), validation.By(strictString), validation.By(supportedWebsite)),
	)
}

// Report converts a validated request into the stored report.
func (r ReportMissingBangumiRequest) Report(now time.Time) model.MissingReport {
	return model.MissingReport{
		Website:   model.Website(r.Website.Value),
		BangumiID: r.BangumiID.Value,
		SubjectID: r.SubjectID.Value,
		Title:     r.Title.Value,
		Href:      r.Href.Value,
		CreatedAt: now.UTC(),
	}
}

func required(value interface{}) error {
	s, _ := value.(JSONString)
	if !s.Present || (!s.Invalid && s.Value == "") {
		return errBlank
	}
	return nil
}

func strictString(value interface{}) error {
	s, _ := value.(JSONString)
	if s.Numeric || s.Invalid {
		return errNotString
	}
	return nil
}

func looseString(value interface{}) error {
	s, _ := value.(JSONString)
	if s.Invalid {
		return errNotStringer
	}
	return nil
}

func supportedWebsite(value interface{}) error {
	s, _ := value.(JSONString)
	if _, ok := model.ParseWebsite(s.Value); !ok {
		return fmt.Errorf("must be one of: %s", model.WebsiteNames())
	}
	return nil
}

// MissingStatisticEntry is one row of the missing statistics listing.
type MissingStatisticEntry struct {
	model.MissingStatistic
	BangumiURL string `json:"bangumi_url"`
	SubjectURL string `json:"subject_url,omitempty"`
}

// NewMissingStatisticEntry derives the display URLs for a statistic.
func NewMissingStatisticEntry(s model.MissingStatistic) MissingStatisticEntry {
	entry := MissingStatisticEntry{
		MissingStatistic: s,
		BangumiURL:       s.Website.BangumiURL(s.BangumiID),
	}
	if s.SubjectID != "" {
		entry.SubjectURL = model.SubjectURL(s.SubjectID)
	}
	return entry
}
