package service

import (
	"fmt"
	"io"
	"os"

	"github.com/ludo-technologies/treedist/domain"
)

// ReportWriterImpl writes formatted reports either to a file path or a
// fallback writer.
type ReportWriterImpl struct{}

// NewReportWriter creates a report writer.
func NewReportWriter() *ReportWriterImpl {
	return &ReportWriterImpl{}
}

// Write runs writeFunc against the destination: the file at outputPath
// when non-empty (created or truncated), otherwise the given writer.
func (r *ReportWriterImpl) Write(writer io.Writer, outputPath string, writeFunc func(io.Writer) error) error {
	if outputPath == "" {
		return writeFunc(writer)
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return domain.NewOutputError("failed to create output file: "+outputPath, err)
	}
	defer file.Close()
	if err := writeFunc(file); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", outputPath)
	return nil
}
