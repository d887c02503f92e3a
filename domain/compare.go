package domain

import (
	"context"
	"io"
	"time"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// TreeNotation identifies how an input string or file is turned into a
// tree.
type TreeNotation string

const (
	// TreeNotationBracket is the {label{child}...} notation.
	TreeNotationBracket TreeNotation = "bracket"
	// TreeNotationPython parses Python source into its syntax tree.
	TreeNotationPython TreeNotation = "python"
)

// EditOp classifies a single entry of an edit mapping.
type EditOp string

const (
	EditOpMatch  EditOp = "match"
	EditOpRename EditOp = "rename"
	EditOpDelete EditOp = "delete"
	EditOpInsert EditOp = "insert"
)

// CostWeights are the externally tunable parameters of the default
// cost model. All three default to 1.0.
type CostWeights struct {
	Rename float64 `json:"rename" yaml:"rename" toml:"rename"`
	Insert float64 `json:"insert" yaml:"insert" toml:"insert"`
	Delete float64 `json:"delete" yaml:"delete" toml:"delete"`
}

// CompareRequest holds the input for a single tree comparison.
type CompareRequest struct {
	// Tree1 and Tree2 are tree sources: bracket notation strings, or
	// source text when Notation selects a language front end.
	Tree1 string
	Tree2 string

	Notation TreeNotation
	Costs    CostWeights

	// IncludeMapping requests edit mapping reconstruction in addition
	// to the distance.
	IncludeMapping bool

	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string
}

// MappingEntry is one pair of an edit mapping, by node identity.
// Negative ids mean the side is absent (pure insert or delete).
type MappingEntry struct {
	Op     EditOp `json:"op" yaml:"op" csv:"op"`
	Node1  int    `json:"node1" yaml:"node1" csv:"node1"`
	Node2  int    `json:"node2" yaml:"node2" csv:"node2"`
	Label1 string `json:"label1,omitempty" yaml:"label1,omitempty" csv:"label1"`
	Label2 string `json:"label2,omitempty" yaml:"label2,omitempty" csv:"label2"`
}

// CompareResponse is the result of a tree comparison.
type CompareResponse struct {
	Distance   float64 `json:"distance" yaml:"distance"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
	Tree1Size  int     `json:"tree1_size" yaml:"tree1_size"`
	Tree2Size  int     `json:"tree2_size" yaml:"tree2_size"`

	// MappingCost re-scores the reconstructed mapping under the same
	// cost model; it must equal Distance. Present only when a mapping
	// was requested.
	Mapping     []MappingEntry `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	MappingCost *float64       `json:"mapping_cost,omitempty" yaml:"mapping_cost,omitempty"`

	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// BatchRequest compares every pair of tree files matched by the
// include patterns.
type BatchRequest struct {
	Paths           []string
	IncludePatterns []string
	ExcludePatterns []string
	Recursive       bool

	Notation TreeNotation
	Costs    CostWeights

	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string

	ShowProgress bool
}

// BatchPair is the distance between one pair of input files.
type BatchPair struct {
	File1      string  `json:"file1" yaml:"file1" csv:"file1"`
	File2      string  `json:"file2" yaml:"file2" csv:"file2"`
	Distance   float64 `json:"distance" yaml:"distance" csv:"distance"`
	Similarity float64 `json:"similarity" yaml:"similarity" csv:"similarity"`
}

// BatchResponse holds all pairwise distances of a batch run.
type BatchResponse struct {
	Files       []string    `json:"files" yaml:"files"`
	Pairs       []BatchPair `json:"pairs" yaml:"pairs"`
	GeneratedAt time.Time   `json:"generated_at" yaml:"generated_at"`
}

// CompareService computes distances and mappings for tree pairs.
type CompareService interface {
	Compare(ctx context.Context, req *CompareRequest) (*CompareResponse, error)
}

// BatchService runs pairwise comparisons over file sets.
type BatchService interface {
	CompareAll(ctx context.Context, req *BatchRequest) (*BatchResponse, error)
}

// CompareOutputFormatter formats comparison results.
type CompareOutputFormatter interface {
	Write(response *CompareResponse, format OutputFormat, writer io.Writer) error
	WriteBatch(response *BatchResponse, format OutputFormat, writer io.Writer) error
}

// TreeFileReader resolves and reads tree input files.
type TreeFileReader interface {
	// CollectTreeFiles expands paths and glob patterns into the list
	// of files to compare, deterministically ordered.
	CollectTreeFiles(paths []string, include, exclude []string, recursive bool) ([]string, error)

	// ReadTreeFile returns the file contents.
	ReadTreeFile(path string) (string, error)
}

// ProgressManager tracks progress of batch comparisons.
type ProgressManager interface {
	Initialize(maxValue int)
	Start()
	Update(processed, total int)
	Complete(success bool)
	SetWriter(writer io.Writer)
	IsInteractive() bool
	Close()
}
