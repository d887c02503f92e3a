package domain

// Default cost weights for the unit cost model. The classical tree
// edit distance counts every insert, delete and rename as one
// operation; renaming a node to an identical label is free.
const (
	DefaultRenameCost = 1.0
	DefaultInsertCost = 1.0
	DefaultDeleteCost = 1.0
)

// DefaultCostWeights returns the unit cost configuration.
func DefaultCostWeights() CostWeights {
	return CostWeights{
		Rename: DefaultRenameCost,
		Insert: DefaultInsertCost,
		Delete: DefaultDeleteCost,
	}
}

// DefaultCompareRequest returns a comparison request with sensible
// defaults: bracket notation, unit costs, text output, no mapping.
func DefaultCompareRequest() *CompareRequest {
	return &CompareRequest{
		Notation:     TreeNotationBracket,
		Costs:        DefaultCostWeights(),
		OutputFormat: OutputFormatText,
	}
}

// DefaultBatchRequest returns a batch request with sensible defaults.
func DefaultBatchRequest() *BatchRequest {
	return &BatchRequest{
		IncludePatterns: []string{"**/*.tree"},
		Recursive:       true,
		Notation:        TreeNotationBracket,
		Costs:           DefaultCostWeights(),
		OutputFormat:    OutputFormatText,
		ShowProgress:    true,
	}
}

// Validate checks the request for caller errors before any work runs.
func (r *CompareRequest) Validate() error {
	if r.Tree1 == "" || r.Tree2 == "" {
		return NewInvalidInputError("two input trees are required", nil)
	}
	if err := r.Costs.Validate(); err != nil {
		return err
	}
	switch r.Notation {
	case TreeNotationBracket, TreeNotationPython:
	default:
		return NewInvalidInputError("unknown tree notation: "+string(r.Notation), nil)
	}
	return nil
}

// Validate rejects negative cost weights, which would make distance
// values meaningless.
func (w CostWeights) Validate() error {
	if w.Rename < 0 || w.Insert < 0 || w.Delete < 0 {
		return NewInvalidInputError("cost weights must be non-negative", nil)
	}
	return nil
}
