// Package resolver picks which form a workflow should render. The
// steps document's form reference is soft, so resolution falls back
// through name matching to the first available form.
package resolver

import (
	"strings"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

// Source says how a resolution was reached.
type Source string

const (
	// SourceExplicit means the steps document carried a usable id.
	SourceExplicit Source = "explicit"
	// SourceNameMatch means a form was matched by name.
	SourceNameMatch Source = "name_match"
	// SourceFallback means the first available form was used.
	SourceFallback Source = "fallback"
)

// Resolution is the outcome of resolving a workflow to a form. Form is
// nil when an explicit id points outside the agent's form list.
type Resolution struct {
	FormID int64
	Form   *domain.Form
	Source Source
}

// Resolve picks the form a workflow should present, in priority order:
// an explicit positive form id from the steps document, a form whose
// name equals the steps' name reference (case-insensitive), a form
// whose name and the workflow's name contain each other
// (case-insensitive, either direction), and finally the agent's first
// form. With no forms at all it returns ErrNoFormAvailable.
func Resolve(workflow *domain.Workflow, forms []*domain.Form) (*Resolution, error) {
	ref := workflow.Steps.FormID

	if ref.ByID() {
		return &Resolution{
			FormID: ref.ID,
			Form:   formByID(forms, ref.ID),
			Source: SourceExplicit,
		}, nil
	}

	if ref.ByName() {
		want := strings.ToLower(ref.Name)
		for _, f := range forms {
			if strings.ToLower(f.Name) == want {
				return &Resolution{FormID: f.ID, Form: f, Source: SourceNameMatch}, nil
			}
		}
	}

	wfName := strings.ToLower(workflow.Name)
	for _, f := range forms {
		formName := strings.ToLower(f.Name)
		if strings.Contains(formName, wfName) || strings.Contains(wfName, formName) {
			return &Resolution{FormID: f.ID, Form: f, Source: SourceNameMatch}, nil
		}
	}

	if len(forms) > 0 {
		return &Resolution{FormID: forms[0].ID, Form: forms[0], Source: SourceFallback}, nil
	}

	return nil, domain.ErrNoFormAvailable
}

func formByID(forms []*domain.Form, id int64) *domain.Form {
	for _, f := range forms {
		if f.ID == id {
			return f
		}
	}
	return nil
}
