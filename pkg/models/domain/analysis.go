package domain

// AnalysisReport is the optimization report produced by the analysis service.
// Optional parts are nil when the service omitted them; slices keep their
// nil/empty distinction so renderers can tell "absent" from "none found".
type AnalysisReport struct {
	RequestID            string
	OverallAssessment    string
	AlternativeApproach  *AlternativeApproach
	CodeBlockSuggestions []CodeBlockSuggestion
	CommonInefficiencies []string
}

// AlternativeApproach is a holistic redesign suggestion, distinct from the
// per-block suggestions.
type AlternativeApproach struct {
	Title       string
	Description string
	Overview    []string
	Benefits    []string
}

// CodeBlockSuggestion describes one inefficiency found in a specific code
// block, with explanation and a conceptual improvement.
type CodeBlockSuggestion struct {
	BlockID     string
	Snippet     string
	Summary     string
	Explanation string
	Improvement string
	ImpactLevel string
}

// CodeAnalysis is the input handed to an analyzer: the code itself plus the
// execution context it ran under, when known.
type CodeAnalysis struct {
	RequestID string
	Language  string
	Code      string
	JobRun    *JobRunContext
}

// JobRunContext summarizes a single Databricks job run.
type JobRunContext struct {
	JobID           int64
	RunID           int64
	RunName         string
	DurationSeconds float64
	TriggerType     string
	Cluster         *ClusterProfile
	Tasks           []TaskSummary
}

// ClusterProfile captures the cluster configuration a run executed on.
type ClusterProfile struct {
	SparkVersion     string
	NodeTypeID       string
	DriverNodeTypeID string
	NumWorkers       int
	RuntimeEngine    string
	CloudPlatform    string
}

// TaskSummary is the per-task slice of a job run.
type TaskSummary struct {
	TaskKey         string
	TaskType        string
	DurationSeconds float64
	ResultState     string
	NotebookPath    string
	Parameters      map[string]string
}

// NotebookExport is decoded notebook source fetched from a workspace.
type NotebookExport struct {
	Path     string
	Source   string
	Language string
}
