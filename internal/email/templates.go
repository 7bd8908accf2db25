package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const (
	TemplateFulfillmentAccepted = "fulfillment_accepted"
	TemplateRatingIssued        = "rating_issued"
)

var defaultTemplates = map[string]string{
	TemplateFulfillmentAccepted: `<p>Hi {{.Name}},</p>
<p>Your submission to <strong>{{.BountyTitle}}</strong> was accepted.</p>
<p><a href="{{.Link}}">View the bounty</a></p>`,
	TemplateRatingIssued: `<p>Hi {{.Name}},</p>
<p>You received a {{.Rating}}/5 rating for <strong>{{.BountyTitle}}</strong>.</p>
<p><a href="{{.Link}}">View the bounty</a></p>`,
}

// TemplateManager реализует TemplateRenderer для управления шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
}

// NewDefaultTemplateManager регистрирует встроенные шаблоны уведомлений.
func NewDefaultTemplateManager() (*TemplateManager, error) {
	tm := NewTemplateManager()
	for name, body := range defaultTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
