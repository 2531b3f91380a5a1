// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobRequirements")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// JobRequirementsSchema returns the extraction schema for raw job
// descriptions. Recruiters paste a posting and get back the structured
// requirements used for compatibility scoring and roadmap planning context.
func JobRequirementsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobRequirements",
		Description: `You are an expert at analyzing job descriptions for software engineering positions.
Extract the key requirements and preferences from the posting below.
Classify each skill as required or preferred and estimate the proficiency level
(beginner, intermediate, advanced, expert) the posting implies.`,
		Fields: []SchemaField{
			{
				Name:        "required_skills",
				Type:        "[{\"name\": \"string\", \"level\": \"string\", \"required\": true}]",
				Description: "Technical skills the posting requires",
				Required:    true,
			},
			{
				Name:        "preferred_skills",
				Type:        "[{\"name\": \"string\", \"level\": \"string\", \"required\": false}]",
				Description: "Nice-to-have skills",
				Required:    false,
			},
			{
				Name:        "experience_required",
				Type:        "{\"min\": number, \"max\": number}",
				Description: "Years of experience range",
				Required:    false,
			},
			{
				Name:        "education_requirements",
				Type:        "[{\"degree\": \"string\", \"field\": \"string\", \"required\": boolean}]",
				Description: "Degree requirements",
				Required:    false,
			},
			{
				Name:        "responsibilities",
				Type:        "[\"string\"]",
				Description: "Key responsibilities, copied verbatim",
				Required:    true,
			},
			{
				Name:        "company_culture",
				Type:        "[\"string\"]",
				Description: "Company culture indicators found in the text",
				Required:    false,
			},
		},
	}
}
