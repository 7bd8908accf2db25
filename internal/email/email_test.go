package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplates_Render(t *testing.T) {
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)

	out, err := tm.Render(TemplateFulfillmentAccepted, TemplateData{
		"Name":        "Hunter",
		"BountyTitle": "Fix <login>",
		"Link":        "https://bounties.network/bounty/1",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Hi Hunter")
	assert.Contains(t, out, "Fix &lt;login&gt;")

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestSMTPProvider_Validate(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Port: 587}, nil)
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com"}, nil)
	assert.NoError(t, p.Validate())

	err := p.SendTemplate([]string{"a@example.com"}, "subj", TemplateRatingIssued, nil)
	assert.ErrorContains(t, err, "renderer")
}

func TestSMTPProvider_BuildMessage(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com", FromName: "Bounties"}, nil)
	m := p.buildMessage(&Email{To: []string{"a@example.com"}, Subject: "Hello", HTMLBody: "<p>x</p>"})

	assert.Equal(t, []string{"a@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, m.GetHeader("Subject"))
	assert.Contains(t, m.GetHeader("From")[0], "noreply@example.com")
}

func TestMockProvider_Records(t *testing.T) {
	m := &MockProvider{}
	require.NoError(t, m.SendTemplate([]string{"a@example.com"}, "subj", TemplateRatingIssued, nil))
	msgs := m.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "subj", msgs[0].Subject)
}
