package email

import "errors"

// Template names an HTML file under templates/.
type Template string

const (
	// TemplateContactNotification corresponds to templates/contact_notification.html
	TemplateContactNotification Template = "contact_notification"
)

var ErrUnknownTemplate = errors.New("unknown email template")

func (t Template) file() string {
	return string(t) + ".html"
}

// Templates lists every template that has preview data.
func Templates() []Template {
	return []Template{TemplateContactNotification}
}
