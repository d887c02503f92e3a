package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/treedist/domain"
	"github.com/ludo-technologies/treedist/internal/ted"
)

func compareReq(tree1, tree2 string) *domain.CompareRequest {
	req := domain.DefaultCompareRequest()
	req.Tree1 = tree1
	req.Tree2 = tree2
	return req
}

func TestCompareService_Compare(t *testing.T) {
	svc := NewCompareService()
	resp, err := svc.Compare(context.Background(), compareReq("{a{b}{c}}", "{a{b}}"))
	require.NoError(t, err)

	assert.Equal(t, 1.0, resp.Distance)
	assert.Equal(t, 3, resp.Tree1Size)
	assert.Equal(t, 2, resp.Tree2Size)
	assert.InDelta(t, 1.0-1.0/3.0, resp.Similarity, 1e-9)
	assert.Nil(t, resp.Mapping)
	assert.Nil(t, resp.MappingCost)
	assert.False(t, resp.GeneratedAt.IsZero())
}

func TestCompareService_IncludeMapping(t *testing.T) {
	svc := NewCompareService()
	req := compareReq("{a{b}{c}}", "{x{b}}")
	req.IncludeMapping = true

	resp, err := svc.Compare(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2.0, resp.Distance)
	require.NotNil(t, resp.MappingCost)
	assert.InDelta(t, resp.Distance, *resp.MappingCost, 1e-9)

	ops := map[domain.EditOp]int{}
	for _, e := range resp.Mapping {
		ops[e.Op]++
	}
	assert.Equal(t, 1, ops[domain.EditOpRename])
	assert.Equal(t, 1, ops[domain.EditOpDelete])
	assert.Equal(t, 1, ops[domain.EditOpMatch])
}

func TestCompareService_WeightedCosts(t *testing.T) {
	svc := NewCompareService()
	req := compareReq("{a}", "{a{b}}")
	req.Costs.Insert = 0.5

	resp, err := svc.Compare(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, resp.Distance, 1e-9)
}

func TestCompareService_ValidationErrors(t *testing.T) {
	svc := NewCompareService()

	t.Run("missing tree", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), compareReq("{a}", ""))
		require.Error(t, err)
		var derr domain.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, domain.ErrCodeInvalidInput, derr.Code)
	})

	t.Run("negative cost", func(t *testing.T) {
		req := compareReq("{a}", "{b}")
		req.Costs.Delete = -1
		_, err := svc.Compare(context.Background(), req)
		require.Error(t, err)
		var derr domain.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, domain.ErrCodeInvalidInput, derr.Code)
	})

	t.Run("malformed notation", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), compareReq("{a", "{b}"))
		require.Error(t, err)
		var derr domain.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, domain.ErrCodeParseError, derr.Code)
	})
}

func TestCompareService_PythonNotation(t *testing.T) {
	svc := NewCompareService()
	req := compareReq("x = 1\n", "x = 2\n")
	req.Notation = domain.TreeNotationPython

	resp, err := svc.Compare(context.Background(), req)
	require.NoError(t, err)
	// Same shape, one literal differs.
	assert.Equal(t, resp.Tree1Size, resp.Tree2Size)
	assert.Equal(t, 1.0, resp.Distance)
}

func TestCostModelFromWeights(t *testing.T) {
	unit := CostModelFromWeights(domain.DefaultCostWeights())
	assert.IsType(t, &ted.UnitCostModel{}, unit)

	weighted := CostModelFromWeights(domain.CostWeights{Rename: 2, Insert: 1, Delete: 1})
	assert.IsType(t, &ted.WeightedCostModel{}, weighted)
}

func TestMappingEntries_Classification(t *testing.T) {
	svc := NewCompareService()
	req := compareReq("{a{b}}", "{a{c}{d}}")
	req.IncludeMapping = true

	resp, err := svc.Compare(context.Background(), req)
	require.NoError(t, err)

	for _, e := range resp.Mapping {
		switch e.Op {
		case domain.EditOpMatch:
			assert.Equal(t, e.Label1, e.Label2)
			assert.GreaterOrEqual(t, e.Node1, 0)
			assert.GreaterOrEqual(t, e.Node2, 0)
		case domain.EditOpRename:
			assert.NotEqual(t, e.Label1, e.Label2)
		case domain.EditOpDelete:
			assert.Equal(t, -1, e.Node2)
			assert.Empty(t, e.Label2)
		case domain.EditOpInsert:
			assert.Equal(t, -1, e.Node1)
			assert.Empty(t, e.Label1)
		}
	}
}
