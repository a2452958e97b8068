package analysis

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// evaluationSchema constrains the shape of the model's evaluation JSON.
// No field is required — absence falls back to defaults — but present
// fields must carry the right type.
const evaluationSchema = `{
	"type": "object",
	"properties": {
		"grammar_score": {"type": "number"},
		"structure_score": {"type": "number"},
		"professional_tone_score": {"type": "number"},
		"filler_words": {"type": "array", "items": {"type": "string"}},
		"star_method_detected": {"type": "boolean"},
		"improvement_suggestions": {"type": "array", "items": {"type": "string"}},
		"rewritten_professional_answer": {"type": "string"}
	}
}`

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileSchemaOnce sync.Once
)

// validateEvaluation checks the raw model output against evaluationSchema.
func validateEvaluation(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("analysis: evaluation is not valid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("analysis: evaluation failed schema validation: %w", err)
	}
	return nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(evaluationSchema), &def); err != nil {
			compiledSchemaErr = fmt.Errorf("analysis: parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://evaluation.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compiledSchemaErr = fmt.Errorf("analysis: add schema resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compiledSchemaErr
}
