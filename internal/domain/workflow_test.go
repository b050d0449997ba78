package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormRefParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FormRef
	}{
		{"numeric id", `42`, FormRef{ID: 42}},
		{"numeric string", `"42"`, FormRef{ID: 42}},
		{"name string", `"intake-form"`, FormRef{Name: "intake-form"}},
		{"null", `null`, FormRef{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref FormRef
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ref))
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestWorkflowStepsParseObject(t *testing.T) {
	var steps WorkflowSteps
	err := json.Unmarshal([]byte(`{"form_id": 7, "form_config": {"form_title": "T", "fields": []}, "timeout": 30}`), &steps)
	require.NoError(t, err)

	assert.Equal(t, int64(7), steps.FormID.ID)
	require.NotNil(t, steps.FormConfig)
	assert.Equal(t, "T", steps.FormConfig.Title)

	// Unknown keys survive a round trip.
	out, err := json.Marshal(steps)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, float64(30), m["timeout"])
	assert.Equal(t, float64(7), m["form_id"])
}

func TestWorkflowStepsParseDoubleEncodedString(t *testing.T) {
	var steps WorkflowSteps
	err := json.Unmarshal([]byte(`"{\"form_id\": \"intake-form\"}"`), &steps)
	require.NoError(t, err)

	assert.True(t, steps.FormID.ByName())
	assert.Equal(t, "intake-form", steps.FormID.Name)
}

func TestWorkflowStepsRewriteFormRef(t *testing.T) {
	var steps WorkflowSteps
	require.NoError(t, json.Unmarshal([]byte(`{"form_id": "intake-form", "extra": true}`), &steps))

	steps.RewriteFormRef(map[string]int64{"intake-form": 99})

	assert.True(t, steps.FormID.ByID())
	assert.Equal(t, int64(99), steps.FormID.ID)

	out, err := json.Marshal(steps)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, float64(99), m["form_id"])
	assert.Equal(t, true, m["extra"])
}

func TestWorkflowStepsRewriteLeavesUnknownName(t *testing.T) {
	var steps WorkflowSteps
	require.NoError(t, json.Unmarshal([]byte(`{"form_id": "mystery"}`), &steps))

	steps.RewriteFormRef(map[string]int64{"intake-form": 99})

	assert.True(t, steps.FormID.ByName())
	assert.Equal(t, "mystery", steps.FormID.Name)
}

func TestWorkflowStepsRewriteKeepsExplicitID(t *testing.T) {
	var steps WorkflowSteps
	require.NoError(t, json.Unmarshal([]byte(`{"form_id": 5}`), &steps))

	steps.RewriteFormRef(map[string]int64{"5": 99})

	assert.Equal(t, int64(5), steps.FormID.ID)
}

func TestFormSchemaValidate(t *testing.T) {
	valid := FormSchema{Fields: []FormField{{Name: "a", Type: FieldTypeText}}}
	assert.NoError(t, valid.Validate())

	// Unknown types are fine, the renderer skips them.
	odd := FormSchema{Fields: []FormField{{Name: "b", Type: FieldType("file")}}}
	assert.NoError(t, odd.Validate())

	unnamed := FormSchema{Fields: []FormField{{Label: "No name", Type: FieldTypeText}}}
	err := unnamed.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
