package service

import (
	"context"
	"time"

	"github.com/ludo-technologies/treedist/domain"
	"github.com/ludo-technologies/treedist/internal/ted"
	"github.com/ludo-technologies/treedist/internal/tree"
)

// BatchServiceImpl compares every pair of tree files in a file set.
type BatchServiceImpl struct {
	reader   domain.TreeFileReader
	progress domain.ProgressManager
}

// NewBatchService creates a batch service with the given collaborators.
// Nil collaborators fall back to the default implementations.
func NewBatchService(reader domain.TreeFileReader, progress domain.ProgressManager) *BatchServiceImpl {
	if reader == nil {
		reader = NewTreeFileReader()
	}
	if progress == nil {
		progress = NewProgressManager()
	}
	return &BatchServiceImpl{reader: reader, progress: progress}
}

// CompareAll parses every matched file once, then computes the
// pairwise distances. Each pair gets its own engine instance, so
// computations share no state. The context is honored between pairs;
// a single pair is never interrupted.
func (s *BatchServiceImpl) CompareAll(ctx context.Context, req *domain.BatchRequest) (*domain.BatchResponse, error) {
	files, err := s.reader.CollectTreeFiles(req.Paths, req.IncludePatterns, req.ExcludePatterns, req.Recursive)
	if err != nil {
		return nil, err
	}
	if len(files) < 2 {
		return nil, domain.NewInvalidInputError("batch comparison needs at least two tree files", nil)
	}
	if err := req.Costs.Validate(); err != nil {
		return nil, err
	}

	trees := make([]*tree.Tree, len(files))
	for i, f := range files {
		content, err := s.reader.ReadTreeFile(f)
		if err != nil {
			return nil, err
		}
		t, err := BuildTree(ctx, req.Notation, content)
		if err != nil {
			return nil, domain.NewParseError(f, err)
		}
		trees[i] = t
	}

	totalPairs := len(files) * (len(files) - 1) / 2
	if req.ShowProgress {
		s.progress.Initialize(totalPairs)
		s.progress.Start()
		defer s.progress.Close()
	}

	cost := CostModelFromWeights(req.Costs)
	resp := &domain.BatchResponse{
		Files:       files,
		Pairs:       make([]domain.BatchPair, 0, totalPairs),
		GeneratedAt: time.Now(),
	}
	done := 0
	for i := 0; i < len(files); i++ {
		for j := i + 1; j < len(files); j++ {
			if err := ctx.Err(); err != nil {
				if req.ShowProgress {
					s.progress.Complete(false)
				}
				return nil, domain.NewComputeError("batch comparison cancelled", err)
			}
			engine := ted.NewEngine(cost)
			d, err := engine.ComputeDistance(trees[i], trees[j])
			if err != nil {
				if req.ShowProgress {
					s.progress.Complete(false)
				}
				return nil, domain.NewComputeError("distance computation failed", err)
			}
			resp.Pairs = append(resp.Pairs, domain.BatchPair{
				File1:      files[i],
				File2:      files[j],
				Distance:   d,
				Similarity: ted.Similarity(d, trees[i].NodeCount(), trees[j].NodeCount()),
			})
			done++
			if req.ShowProgress {
				s.progress.Update(done, totalPairs)
			}
		}
	}
	if req.ShowProgress {
		s.progress.Complete(true)
	}
	return resp, nil
}
