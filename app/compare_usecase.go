package app

import (
	"context"
	"io"
	"os"

	"github.com/ludo-technologies/treedist/domain"
	"github.com/ludo-technologies/treedist/service"
)

// CompareUseCase orchestrates a comparison end to end: compute,
// format, write.
type CompareUseCase struct {
	compare   domain.CompareService
	batch     domain.BatchService
	formatter domain.CompareOutputFormatter
	writer    *service.ReportWriterImpl
}

// NewCompareUseCase wires the use case with explicit collaborators.
// Nil collaborators fall back to the default implementations.
func NewCompareUseCase(compare domain.CompareService, batch domain.BatchService, formatter domain.CompareOutputFormatter) *CompareUseCase {
	if compare == nil {
		compare = service.NewCompareService()
	}
	if batch == nil {
		batch = service.NewBatchService(nil, nil)
	}
	if formatter == nil {
		formatter = service.NewCompareFormatter()
	}
	return &CompareUseCase{
		compare:   compare,
		batch:     batch,
		formatter: formatter,
		writer:    service.NewReportWriter(),
	}
}

// Execute runs a single comparison and writes the formatted result.
func (uc *CompareUseCase) Execute(ctx context.Context, req *domain.CompareRequest) (*domain.CompareResponse, error) {
	resp, err := uc.compare.Compare(ctx, req)
	if err != nil {
		return nil, err
	}
	out := req.OutputWriter
	if out == nil {
		out = os.Stdout
	}
	err = uc.writer.Write(out, req.OutputPath, func(w io.Writer) error {
		return uc.formatter.Write(resp, req.OutputFormat, w)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ExecuteBatch runs pairwise comparisons over the matched files and
// writes the formatted result.
func (uc *CompareUseCase) ExecuteBatch(ctx context.Context, req *domain.BatchRequest) (*domain.BatchResponse, error) {
	resp, err := uc.batch.CompareAll(ctx, req)
	if err != nil {
		return nil, err
	}
	out := req.OutputWriter
	if out == nil {
		out = os.Stdout
	}
	err = uc.writer.Write(out, req.OutputPath, func(w io.Writer) error {
		return uc.formatter.WriteBatch(resp, req.OutputFormat, w)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
