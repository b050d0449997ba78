package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

// Form renders a form schema to HTML inputs. Field types outside the
// known set contribute nothing; a select gets an empty "Select..."
// option ahead of its choices so no real choice is preselected.
func (r *Renderer) Form(schema *domain.FormSchema) (template.HTML, error) {
	var b strings.Builder
	if err := r.templates.ExecuteTemplate(&b, "form_fields.tmpl", schema); err != nil {
		return "", fmt.Errorf("render form: %w", err)
	}
	return template.HTML(b.String()), nil
}
