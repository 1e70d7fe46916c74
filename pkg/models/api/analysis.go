package api

// CodeAnalysisRequest is the payload the CLI posts to the analysis service.
type CodeAnalysisRequest struct {
	RequestID    string         `json:"request_id,omitempty"`
	CodeContent  string         `json:"code_content"`
	CodeLanguage string         `json:"code_language"`
	JobContext   *JobRunContext `json:"job_context,omitempty"`
}

type JobRunContext struct {
	JobID                     int64         `json:"job_id,omitempty"`
	RunID                     int64         `json:"run_id,omitempty"`
	RunName                   string        `json:"run_name,omitempty"`
	OverallRunDurationSeconds float64       `json:"overall_run_duration_seconds,omitempty"`
	TriggerType               string        `json:"trigger_type,omitempty"`
	ClusterInfo               *ClusterInfo  `json:"cluster_info,omitempty"`
	Tasks                     []TaskDetails `json:"tasks,omitempty"`
}

type ClusterInfo struct {
	SparkVersion     string `json:"spark_version,omitempty"`
	NodeTypeID       string `json:"node_type_id,omitempty"`
	DriverNodeTypeID string `json:"driver_node_type_id,omitempty"`
	NumWorkers       int    `json:"num_workers,omitempty"`
	RuntimeEngine    string `json:"runtime_engine,omitempty"`
	CloudPlatform    string `json:"cloud_platform,omitempty"`
}

type TaskDetails struct {
	TaskKey                  string            `json:"task_key"`
	TaskType                 string            `json:"task_type,omitempty"`
	ExecutionDurationSeconds float64           `json:"execution_duration_seconds,omitempty"`
	ResultState              string            `json:"result_state,omitempty"`
	NotebookPath             string            `json:"notebook_path,omitempty"`
	Parameters               map[string]string `json:"parameters,omitempty"`
}

// AnalysisReport is the wire form of an optimization report. The same shape
// is used for the service response and for reports persisted to disk.
type AnalysisReport struct {
	RequestID            string                `json:"request_id"`
	OverallAssessment    string                `json:"overall_assessment"`
	AlternativeApproach  *AlternativeApproach  `json:"alternative_approach,omitempty"`
	CodeBlockSuggestions []CodeBlockSuggestion `json:"code_block_suggestions"`
	CommonInefficiencies []string              `json:"common_inefficiencies_observed"`
}

type AlternativeApproach struct {
	Title             string   `json:"title,omitempty"`
	Description       string   `json:"description"`
	SuggestedOverview []string `json:"suggested_approach_overview"`
	EstimatedBenefits []string `json:"estimated_benefits"`
}

type CodeBlockSuggestion struct {
	BlockID                string `json:"block_id"`
	ProblematicCodeSnippet string `json:"problematic_code_snippet,omitempty"`
	InefficiencySummary    string `json:"inefficiency_summary"`
	DetailedExplanation    string `json:"detailed_explanation"`
	ConceptualImprovement  string `json:"improvement_suggestion_conceptual"`
	PotentialImpactLevel   string `json:"potential_impact_level,omitempty"`
}
