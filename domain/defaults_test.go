package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCompareRequest(t *testing.T) {
	req := DefaultCompareRequest()
	assert.Equal(t, TreeNotationBracket, req.Notation)
	assert.Equal(t, OutputFormatText, req.OutputFormat)
	assert.Equal(t, DefaultCostWeights(), req.Costs)
	assert.False(t, req.IncludeMapping)
}

func TestDefaultBatchRequest(t *testing.T) {
	req := DefaultBatchRequest()
	assert.Equal(t, []string{"**/*.tree"}, req.IncludePatterns)
	assert.True(t, req.Recursive)
	assert.True(t, req.ShowProgress)
	assert.Equal(t, TreeNotationBracket, req.Notation)
}

func TestCompareRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CompareRequest)
		wantErr bool
	}{
		{"valid", func(r *CompareRequest) {}, false},
		{"missing tree1", func(r *CompareRequest) { r.Tree1 = "" }, true},
		{"missing tree2", func(r *CompareRequest) { r.Tree2 = "" }, true},
		{"negative rename cost", func(r *CompareRequest) { r.Costs.Rename = -1 }, true},
		{"unknown notation", func(r *CompareRequest) { r.Notation = "sexpr" }, true},
		{"python notation", func(r *CompareRequest) { r.Notation = TreeNotationPython }, false},
		{"zero costs are allowed", func(r *CompareRequest) { r.Costs = CostWeights{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultCompareRequest()
			req.Tree1 = "{a}"
			req.Tree2 = "{b}"
			tt.mutate(req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewComputeError("computation failed", cause)

	assert.True(t, errors.Is(err, cause))
	var derr DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, ErrCodeComputeError, derr.Code)
	assert.Contains(t, err.Error(), "COMPUTE_ERROR")
	assert.Contains(t, err.Error(), "root cause")
}
