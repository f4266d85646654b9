package converter

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/you-humble/noventa-support/internal/model"
)

var (
	//go:embed templates/community_subscribed.tmpl
	communitySubscribedFS       embed.FS
	communitySubscribedTemplate = template.Must(template.ParseFS(communitySubscribedFS, "templates/community_subscribed.tmpl"))

	//go:embed templates/staff_subscribed.tmpl
	staffSubscribedFS       embed.FS
	staffSubscribedTemplate = template.Must(template.ParseFS(staffSubscribedFS, "templates/staff_subscribed.tmpl"))
)

func BuildCommunitySubscribed(a model.Announcement) (string, error) {
	var buf bytes.Buffer
	if err := communitySubscribedTemplate.Execute(&buf, a); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func BuildStaffSubscribed(a model.Announcement) (string, error) {
	var buf bytes.Buffer
	if err := staffSubscribedTemplate.Execute(&buf, a); err != nil {
		return "", err
	}

	return buf.String(), nil
}
