package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestFormTextAndNumber(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Form(&domain.FormSchema{
		Title: "Client Intake",
		Fields: []domain.FormField{
			{Name: "full_name", Label: "Full Name", Type: domain.FieldTypeText, Required: true, Placeholder: "Jane Doe"},
			{Name: "age", Label: "Age", Type: domain.FieldTypeNumber},
		},
	})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Client Intake")
	assert.Contains(t, out, `name="full_name"`)
	assert.Contains(t, out, `type="text"`)
	assert.Contains(t, out, `placeholder="Jane Doe"`)
	assert.Contains(t, out, `name="age"`)
	assert.Contains(t, out, `type="number"`)
}

func TestFormRequiredMarker(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Form(&domain.FormSchema{
		Fields: []domain.FormField{
			{Name: "email", Label: "Email", Type: domain.FieldTypeText, Required: true},
			{Name: "note", Label: "Note", Type: domain.FieldTypeText},
		},
	})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `<span class="required">*</span>`)
	assert.Contains(t, out, `name="email" placeholder="" required`)
	assert.NotContains(t, out, `name="note" placeholder="" required`)
}

func TestFormSelectOptions(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Form(&domain.FormSchema{
		Fields: []domain.FormField{
			{Name: "priority", Label: "Priority", Type: domain.FieldTypeSelect, Options: []string{"low", "high"}},
		},
	})
	require.NoError(t, err)

	out := string(html)
	// Empty placeholder first, then exactly the schema's options.
	assert.Contains(t, out, `<option value="">Select...</option>`)
	assert.Contains(t, out, `<option value="low">low</option>`)
	assert.Contains(t, out, `<option value="high">high</option>`)
	assert.Equal(t, 3, strings.Count(out, "<option"))
}

func TestFormTextareaAndCheckbox(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Form(&domain.FormSchema{
		Fields: []domain.FormField{
			{Name: "details", Label: "Details", Type: domain.FieldTypeTextarea},
			{Name: "agree", Label: "I agree", Type: domain.FieldTypeCheckbox},
		},
	})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `<textarea id="field-details" name="details"`)
	assert.Contains(t, out, `type="checkbox"`)
	assert.Contains(t, out, `name="agree" value="true"`)
}

func TestFormUnknownTypeRendersNothing(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Form(&domain.FormSchema{
		Fields: []domain.FormField{
			{Name: "avatar", Label: "Avatar", Type: domain.FieldType("file")},
		},
	})
	require.NoError(t, err)

	out := string(html)
	assert.NotContains(t, out, "avatar")
	assert.NotContains(t, out, "<input")
}

func TestPartitionMenusKeepsZoneOrder(t *testing.T) {
	menus := []*domain.Menu{
		{ID: 1, Type: domain.MenuTypeChat, Label: "Chat"},
		{ID: 2, Type: domain.MenuTypeHeader, Label: "Home"},
		{ID: 3, Type: domain.MenuTypeHeader, Label: "About"},
	}

	zones := PartitionMenus(menus)
	require.Len(t, zones, len(domain.MenuTypes))

	assert.Equal(t, domain.MenuTypeHeader, zones[0].Type)
	require.Len(t, zones[0].Menus, 2)
	assert.Equal(t, "Home", zones[0].Menus[0].Label)

	for _, z := range zones {
		if z.Type == domain.MenuTypeChat {
			require.Len(t, z.Menus, 1)
		}
		if z.Type == domain.MenuTypeFooter {
			assert.Empty(t, z.Menus)
		}
	}
}
