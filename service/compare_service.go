package service

import (
	"context"
	"time"

	"github.com/ludo-technologies/treedist/domain"
	"github.com/ludo-technologies/treedist/internal/parser"
	"github.com/ludo-technologies/treedist/internal/ted"
	"github.com/ludo-technologies/treedist/internal/tree"
)

// CompareServiceImpl computes tree edit distances for single requests.
type CompareServiceImpl struct{}

// NewCompareService creates a compare service.
func NewCompareService() *CompareServiceImpl {
	return &CompareServiceImpl{}
}

// Compare parses both inputs, runs the distance engine and, when
// requested, reconstructs the edit mapping with its cross-check cost.
func (s *CompareServiceImpl) Compare(ctx context.Context, req *domain.CompareRequest) (*domain.CompareResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t1, err := BuildTree(ctx, req.Notation, req.Tree1)
	if err != nil {
		return nil, domain.NewParseError(req.Tree1, err)
	}
	t2, err := BuildTree(ctx, req.Notation, req.Tree2)
	if err != nil {
		return nil, domain.NewParseError(req.Tree2, err)
	}

	cost := CostModelFromWeights(req.Costs)
	engine := ted.NewEngine(cost)
	distance, err := engine.ComputeDistance(t1, t2)
	if err != nil {
		return nil, domain.NewComputeError("distance computation failed", err)
	}

	resp := &domain.CompareResponse{
		Distance:    distance,
		Similarity:  ted.Similarity(distance, t1.NodeCount(), t2.NodeCount()),
		Tree1Size:   t1.NodeCount(),
		Tree2Size:   t2.NodeCount(),
		GeneratedAt: time.Now(),
	}

	if req.IncludeMapping {
		mapping, err := engine.ComputeEditMapping()
		if err != nil {
			return nil, domain.NewInvalidPhaseError("edit mapping reconstruction failed", err)
		}
		resp.Mapping = MappingEntries(mapping)
		mc := ted.MappingCost(mapping, cost)
		resp.MappingCost = &mc
	}
	return resp, nil
}

// BuildTree parses a tree source according to the notation.
func BuildTree(ctx context.Context, notation domain.TreeNotation, source string) (*tree.Tree, error) {
	switch notation {
	case domain.TreeNotationPython:
		return parser.NewPythonParser().Parse(ctx, []byte(source))
	default:
		return parser.ParseBracket(source)
	}
}

// CostModelFromWeights builds the engine cost model for the requested
// weights. Unit weights use the plain unit cost model.
func CostModelFromWeights(w domain.CostWeights) ted.CostModel {
	if w.Rename == 1.0 && w.Insert == 1.0 && w.Delete == 1.0 {
		return ted.NewUnitCostModel()
	}
	return ted.NewWeightedCostModel(w.Rename, w.Insert, w.Delete, nil)
}

// MappingEntries converts an engine mapping into the output
// representation, classifying each pair.
func MappingEntries(mapping ted.Mapping) []domain.MappingEntry {
	entries := make([]domain.MappingEntry, 0, len(mapping))
	for _, p := range mapping {
		e := domain.MappingEntry{Node1: -1, Node2: -1}
		switch {
		case p.Node1 != nil && p.Node2 != nil:
			e.Op = domain.EditOpRename
			if p.Node1.Label() == p.Node2.Label() {
				e.Op = domain.EditOpMatch
			}
			e.Node1 = p.Node1.ID()
			e.Node2 = p.Node2.ID()
			e.Label1 = p.Node1.Label()
			e.Label2 = p.Node2.Label()
		case p.Node1 != nil:
			e.Op = domain.EditOpDelete
			e.Node1 = p.Node1.ID()
			e.Label1 = p.Node1.Label()
		case p.Node2 != nil:
			e.Op = domain.EditOpInsert
			e.Node2 = p.Node2.ID()
			e.Label2 = p.Node2.Label()
		}
		entries = append(entries, e)
	}
	return entries
}
