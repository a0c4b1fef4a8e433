package model

import (
	"fmt"
	"strings"
)

// Website is a streaming site whose show ids are cross-referenced with bgm.tv.
type Website string

const (
	WebsiteBilibili Website = "bilibili"
	WebsiteIqiyi    Website = "iqiyi"
)

// SubjectURLTemplate renders a bgm.tv subject page.
const SubjectURLTemplate = "https://bgm.tv/subject/%s"

var websiteURLTemplates = map[Website]string{
	WebsiteBilibili: "https://www.bilibili.com/bangumi/media/md%s/",
	WebsiteIqiyi:    "https://www.iqiyi.com/%s.html",
}

// Websites lists the supported sites in a stable order.
func Websites() []Website {
	return []Website{WebsiteBilibili, WebsiteIqiyi}
}

// ParseWebsite returns the Website named by s, or false if it is not supported.
func ParseWebsite(s string) (Website, bool) {
	w := Website(s)
	_, ok := websiteURLTemplates[w]
	return w, ok
}

func (w Website) String() string { return string(w) }

// BangumiURL is the site's page for a show id.
func (w Website) BangumiURL(bangumiID string) string {
	tpl, ok := websiteURLTemplates[w]
	if !ok {
		return ""
	}
	return fmt.Sprintf(tpl, bangumiID)
}

// SubjectURL is the bgm.tv page for a subject id.
func SubjectURL(subjectID string) string {
	return fmt.Sprintf(SubjectURLTemplate, subjectID)
}

// WebsiteNames joins the supported site names for messages.
func WebsiteNames() string {
	names := make([]string, 0, len(websiteURLTemplates))
	for _, w := range Websites() {
		names = append(names, w.String())
	}
	return strings.Join(names, ", ")
}
