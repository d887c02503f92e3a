package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ludo-technologies/treedist/domain"
)

// CompareFormatterImpl renders comparison results in the supported
// output formats.
type CompareFormatterImpl struct{}

// NewCompareFormatter creates an output formatter.
func NewCompareFormatter() *CompareFormatterImpl {
	return &CompareFormatterImpl{}
}

// Write formats a single comparison result.
func (f *CompareFormatterImpl) Write(response *domain.CompareResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatCSV:
		return f.writeCSV(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *CompareFormatterImpl) writeText(response *domain.CompareResponse, w io.Writer) error {
	var b strings.Builder
	b.WriteString("Tree Edit Distance\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "%-25s %g\n", "Distance:", response.Distance)
	fmt.Fprintf(&b, "%-25s %.3f\n", "Similarity:", response.Similarity)
	fmt.Fprintf(&b, "%-25s %d\n", "Tree 1 nodes:", response.Tree1Size)
	fmt.Fprintf(&b, "%-25s %d\n", "Tree 2 nodes:", response.Tree2Size)
	if response.MappingCost != nil {
		fmt.Fprintf(&b, "%-25s %g\n", "Mapping cost:", *response.MappingCost)
	}
	if len(response.Mapping) > 0 {
		b.WriteString("\nEdit Mapping\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, e := range response.Mapping {
			switch e.Op {
			case domain.EditOpDelete:
				fmt.Fprintf(&b, "  delete  %d %q\n", e.Node1, e.Label1)
			case domain.EditOpInsert:
				fmt.Fprintf(&b, "  insert  %d %q\n", e.Node2, e.Label2)
			case domain.EditOpRename:
				fmt.Fprintf(&b, "  rename  %d %q -> %d %q\n", e.Node1, e.Label1, e.Node2, e.Label2)
			default:
				fmt.Fprintf(&b, "  match   %d -> %d %q\n", e.Node1, e.Node2, e.Label1)
			}
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return domain.NewOutputError("failed to write report", err)
	}
	return nil
}

func (f *CompareFormatterImpl) writeCSV(response *domain.CompareResponse, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"distance", "similarity", "tree1_size", "tree2_size"}); err != nil {
		return domain.NewOutputError("failed to write CSV", err)
	}
	rec := []string{
		strconv.FormatFloat(response.Distance, 'g', -1, 64),
		strconv.FormatFloat(response.Similarity, 'f', 3, 64),
		strconv.Itoa(response.Tree1Size),
		strconv.Itoa(response.Tree2Size),
	}
	if err := cw.Write(rec); err != nil {
		return domain.NewOutputError("failed to write CSV", err)
	}
	cw.Flush()
	return cw.Error()
}

// WriteBatch formats the pairwise results of a batch run.
func (f *CompareFormatterImpl) WriteBatch(response *domain.BatchResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatText:
		return f.writeBatchText(response, writer)
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatCSV:
		return f.writeBatchCSV(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *CompareFormatterImpl) writeBatchText(response *domain.BatchResponse, w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Pairwise Tree Edit Distances (%d files, %d pairs)\n",
		len(response.Files), len(response.Pairs))
	b.WriteString(strings.Repeat("=", 40) + "\n")
	for _, p := range response.Pairs {
		fmt.Fprintf(&b, "%s <-> %s: distance %g (similarity %.3f)\n",
			p.File1, p.File2, p.Distance, p.Similarity)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return domain.NewOutputError("failed to write report", err)
	}
	return nil
}

func (f *CompareFormatterImpl) writeBatchCSV(response *domain.BatchResponse, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"file1", "file2", "distance", "similarity"}); err != nil {
		return domain.NewOutputError("failed to write CSV", err)
	}
	for _, p := range response.Pairs {
		rec := []string{
			p.File1,
			p.File2,
			strconv.FormatFloat(p.Distance, 'g', -1, 64),
			strconv.FormatFloat(p.Similarity, 'f', 3, 64),
		}
		if err := cw.Write(rec); err != nil {
			return domain.NewOutputError("failed to write CSV", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
