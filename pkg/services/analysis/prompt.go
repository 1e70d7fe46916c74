package analysis

import (
	"fmt"
	"strings"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

const jsonContract = `Your entire response MUST be a single, valid JSON object. Do NOT include any text,
explanations, or markdown formatting (like a json code fence) outside of this JSON object.
The JSON object has the following top-level keys: "overall_assessment",
"alternative_approach" (optional), "code_block_suggestions", and "common_inefficiencies_observed".

Structure:
{
  "overall_assessment": "string: brief summary of the code's purpose, its main steps, and general findings. Max 3-4 sentences.",
  "alternative_approach": {
    "title": "string",
    "description": "string: why this alternative is compelling for this specific use case",
    "suggested_approach_overview": ["string: key high-level steps or architectural changes"],
    "estimated_benefits": ["string: quantifiable or qualitative significant improvements"]
  },
  "code_block_suggestions": [
    {
      "block_id": "string: cell number or descriptive block name",
      "problematic_code_snippet": "string: short relevant snippet, max 5-10 lines",
      "inefficiency_summary": "string: one-sentence summary of the core inefficiency",
      "detailed_explanation": "string: why this is inefficient in the Spark/Databricks execution model",
      "improvement_suggestion_conceptual": "string: what to do differently or what concept to apply; no full replacement code",
      "potential_impact_level": "string: High, Medium, or Low"
    }
  ],
  "common_inefficiencies_observed": ["string: recurring anti-patterns across the codebase"]
}

Include "alternative_approach" ONLY IF a fundamentally different high-level approach
would yield significant and practical benefits; be conservative and omit it when unsure.`

// buildPrompt assembles the instruction block sent to the model: the code,
// its execution context when known, and the response contract.
func buildPrompt(a domain.CodeAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "As an expert Databricks and Apache Spark optimization assistant, perform a deep and "+
		"thorough analysis of the provided %s code and its execution context. Identify inefficiencies "+
		"and suggest specific, actionable improvements for efficiency (speed, resource usage, cost) "+
		"and maintainability.\n\n", a.Language)

	b.WriteString("Code to analyze:\n")
	b.WriteString(a.Code)
	b.WriteString("\n\nExecution context:\n")
	b.WriteString(formatJobContext(a.JobRun))
	b.WriteString("\n\n")
	b.WriteString(jsonContract)
	b.WriteString("\n\nPerform the analysis now and provide your structured JSON response.")

	return b.String()
}

func formatJobContext(jc *domain.JobRunContext) string {
	if jc == nil {
		return "No specific job context was provided with this code."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Job ID: %s\n", orNA(jc.JobID))
	fmt.Fprintf(&b, "Run ID: %s\n", orNA(jc.RunID))
	fmt.Fprintf(&b, "Run Name: %s\n", orNAString(jc.RunName))
	fmt.Fprintf(&b, "Overall Run Duration: %s\n", orNADuration(jc.DurationSeconds))
	fmt.Fprintf(&b, "Trigger Type: %s\n", orNAString(jc.TriggerType))
	fmt.Fprintf(&b, "Cluster Configuration: %s\n", formatCluster(jc.Cluster))

	b.WriteString("Task Summary:\n")
	if len(jc.Tasks) == 0 {
		b.WriteString("  No specific task details provided.")
		return b.String()
	}
	for i, task := range jc.Tasks {
		fmt.Fprintf(&b, "  - Task Key: %q, Type: %s, Duration: %s, Result: %s",
			task.TaskKey,
			orNAString(task.TaskType),
			orNADuration(task.DurationSeconds),
			orNAString(task.ResultState))
		if i < len(jc.Tasks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatCluster(c *domain.ClusterProfile) string {
	if c == nil {
		return "N/A"
	}

	engine := c.RuntimeEngine
	if engine == "" {
		engine = "STANDARD"
	}

	return fmt.Sprintf("Spark Version: %s, Node Type (Workers): %s, Driver Node Type: %s, "+
		"Number of Workers: %d, Runtime Engine: %s, Cloud Platform: %s",
		orNAString(c.SparkVersion),
		orNAString(c.NodeTypeID),
		orNAString(c.DriverNodeTypeID),
		c.NumWorkers,
		engine,
		orNAString(c.CloudPlatform))
}

func orNA(v int64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", v)
}

func orNAString(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orNADuration(seconds float64) string {
	if seconds == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs", seconds)
}
