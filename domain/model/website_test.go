package model_test

import (
	"testing"

	"bgm-auto-tracker/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestParseWebsite(t *testing.T) {
	w, ok := model.ParseWebsite("bilibili")
	assert.True(t, ok)
	assert.Equal(t, model.WebsiteBilibili, w)

	w, ok = model.ParseWebsite("iqiyi")
	assert.True(t, ok)
	assert.Equal(t, model.WebsiteIqiyi, w)

	for _, bad := range []string{"", "Bilibili", "youku", "token"} {
		_, ok := model.ParseWebsite(bad)
		assert.False(t, ok, bad)
	}
}

func TestWebsite_BangumiURL(t *testing.T) {
	assert.Equal(t, "https://www.bilibili.com/bangumi/media/md28221000/", model.WebsiteBilibili.BangumiURL("28221000"))
	assert.Equal(t, "https://www.iqiyi.com/a_19rrhb3xt1.html", model.WebsiteIqiyi.BangumiURL("a_19rrhb3xt1"))
	assert.Empty(t, model.Website("youku").BangumiURL("1"))
}

func TestSubjectURL(t *testing.T) {
	assert.Equal(t, "https://bgm.tv/subject/253", model.SubjectURL("253"))
}

func TestWebsiteNames(t *testing.T) {
	assert.Equal(t, "bilibili, iqiyi", model.WebsiteNames())
}

func TestParseSubjectFilter(t *testing.T) {
	assert.Equal(t, model.SubjectKnown, model.ParseSubjectFilter("true"))
	assert.Equal(t, model.SubjectUnknown, model.ParseSubjectFilter("false"))
	assert.Equal(t, model.SubjectAny, model.ParseSubjectFilter(""))
	assert.Equal(t, model.SubjectAny, model.ParseSubjectFilter("yes"))
}
