package email

// PreviewData holds sample data per template, used by `portfolio email preview`.
var PreviewData = map[Template]any{
	TemplateContactNotification: ContactNotification{
		ContactID:   42,
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Subject:     "Freelance project",
		Message:     "Hi! I saw your portfolio and would love to talk about a small Go service.\nAre you available next month?",
		SubmittedAt: "2024-05-01 09:30",
	},
}

// Preview renders a template with its sample data.
func Preview(name Template) (string, error) {
	data, ok := PreviewData[name]
	if !ok {
		return "", ErrUnknownTemplate
	}
	return Render(name, data)
}
