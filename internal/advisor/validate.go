package advisor

import "github.com/xeipuuv/gojsonschema"

// Minimal shape schemas for provider responses. The normalizer tolerates
// almost anything inside a roadmap payload, so these only reject responses
// that are structurally unusable (wrong top-level type, missing the one
// field each consumer cannot default).

const roadmapResponseSchema = `{
  "type": "object",
  "required": ["milestones"],
  "properties": {
    "milestones": {"type": "array"}
  }
}`

const compatibilityResponseSchema = `{
  "type": "object",
  "required": ["match_score"],
  "properties": {
    "match_score": {"type": "number"}
  }
}`

const recommendationsResponseSchema = `{
  "type": "object",
  "required": ["recommendations"],
  "properties": {
    "recommendations": {"type": "array", "items": {"type": "string"}}
  }
}`

// checkShape validates a raw JSON document against a shape schema and
// returns a MalformedResponseError describing the first violation.
func checkShape(schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return &MalformedResponseError{Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		desc := "schema violation"
		if errs := result.Errors(); len(errs) > 0 {
			desc = errs[0].String()
		}
		return &MalformedResponseError{Message: desc}
	}
	return nil
}
