package resolver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

func workflowWithSteps(t *testing.T, name, stepsJSON string) *domain.Workflow {
	t.Helper()
	wf := &domain.Workflow{Name: name}
	require.NoError(t, json.Unmarshal([]byte(stepsJSON), &wf.Steps))
	return wf
}

func TestResolveExplicitID(t *testing.T) {
	forms := []*domain.Form{
		{ID: 10, Name: "Onboarding"},
		{ID: 11, Name: "Intake Review"},
	}
	wf := workflowWithSteps(t, "Anything", `{"form_id": 11}`)

	res, err := Resolve(wf, forms)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.FormID)
	assert.Equal(t, SourceExplicit, res.Source)
	require.NotNil(t, res.Form)
	assert.Equal(t, "Intake Review", res.Form.Name)
}

func TestResolveExplicitIDOutsideList(t *testing.T) {
	forms := []*domain.Form{{ID: 10, Name: "Onboarding"}}
	wf := workflowWithSteps(t, "Anything", `{"form_id": 99}`)

	res, err := Resolve(wf, forms)
	require.NoError(t, err)
	assert.Equal(t, int64(99), res.FormID)
	assert.Equal(t, SourceExplicit, res.Source)
	assert.Nil(t, res.Form)
}

func TestResolveNameReference(t *testing.T) {
	forms := []*domain.Form{
		{ID: 10, Name: "Onboarding"},
		{ID: 11, Name: "Intake Review"},
	}
	wf := workflowWithSteps(t, "Unrelated", `{"form_id": "intake review"}`)

	res, err := Resolve(wf, forms)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.FormID)
	assert.Equal(t, SourceNameMatch, res.Source)
}

func TestResolveWorkflowNameSubstring(t *testing.T) {
	forms := []*domain.Form{
		{ID: 10, Name: "Onboarding"},
		{ID: 11, Name: "Intake Review"},
	}
	// The workflow name contains the form name.
	wf := workflowWithSteps(t, "Intake Review Flow", `{}`)

	res, err := Resolve(wf, forms)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.FormID)
	assert.Equal(t, SourceNameMatch, res.Source)
}

func TestResolveFormNameSubstring(t *testing.T) {
	forms := []*domain.Form{
		{ID: 10, Name: "Customer Onboarding Checklist"},
	}
	// The form name contains the workflow name.
	wf := workflowWithSteps(t, "onboarding", `{}`)

	res, err := Resolve(wf, forms)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.FormID)
	assert.Equal(t, SourceNameMatch, res.Source)
}

func TestResolveHyphenatedFormName(t *testing.T) {
	forms := []*domain.Form{
		{ID: 20, Name: "intake-form"},
		{ID: 21, Name: "exit-form"},
	}
	wf := workflowWithSteps(t, "Intake Review", `{}`)

	res, err := Resolve(wf, forms)
	require.NoError(t, err)
	assert.Equal(t, int64(20), res.FormID)
}

func TestResolveFirstFormFallback(t *testing.T) {
	forms := []*domain.Form{
		{ID: 10, Name: "Alpha"},
		{ID: 11, Name: "Beta"},
	}
	wf := workflowWithSteps(t, "Completely Different", `{}`)

	res, err := Resolve(wf, forms)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.FormID)
	assert.Equal(t, SourceFallback, res.Source)
}

func TestResolveNoForms(t *testing.T) {
	wf := workflowWithSteps(t, "Anything", `{}`)

	res, err := Resolve(wf, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNoFormAvailable)
}

func TestResolveStepsStoredAsString(t *testing.T) {
	forms := []*domain.Form{
		{ID: 10, Name: "Onboarding"},
		{ID: 11, Name: "Survey"},
	}
	wf := workflowWithSteps(t, "Anything", `"{\"form_id\": 11}"`)

	res, err := Resolve(wf, forms)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.FormID)
	assert.Equal(t, SourceExplicit, res.Source)
}

func TestResolveNumericStringReference(t *testing.T) {
	forms := []*domain.Form{{ID: 11, Name: "Survey"}}
	wf := workflowWithSteps(t, "Anything", `{"form_id": "11"}`)

	res, err := Resolve(wf, forms)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.FormID)
	assert.Equal(t, SourceExplicit, res.Source)
}
