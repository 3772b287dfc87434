package classifier

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// intentSchema is the JSON Schema the model's reply must satisfy before
// it is decoded into an Intent. targetJob and location may be null; the
// model is told to use null for fields the query does not mention.
const intentSchema = `{
  "type": "object",
  "required": ["type"],
  "properties": {
    "type": {
      "type": "string",
      "enum": ["skill_gap", "job_search", "course_recommendation", "general"]
    },
    "targetJob": {
      "type": ["string", "null"]
    },
    "location": {
      "type": ["string", "null"]
    },
    "skills": {
      "type": ["array", "null"],
      "items": {"type": "string"}
    }
  }
}`

// validateIntentJSON checks the extracted JSON object against the intent
// schema. Returning an error here counts as a classifier-parse failure.
func validateIntentJSON(document string) error {
	schemaLoader := gojsonschema.NewStringLoader(intentSchema)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("intent schema validation failed: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return fmt.Errorf("intent does not match schema: %s", errs[0].String())
		}
		return fmt.Errorf("intent does not match schema")
	}
	return nil
}
