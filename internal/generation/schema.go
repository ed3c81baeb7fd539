package generation

import "github.com/jonathan/ai-interviewer/internal/schemas"

// questionSetSchema constrains a reconciled question list before it is
// accepted: five questions, each with non-empty text and a known category.
const questionSetSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "minItems": 5,
  "maxItems": 5,
  "items": {
    "type": "object",
    "required": ["text", "category"],
    "properties": {
      "text": {"type": "string", "minLength": 10},
      "category": {"type": "string", "enum": ["technical", "behavioral", "general"]}
    }
  }
}`

// evaluationSchema constrains a model evaluation before its scores are
// clamped and adopted.
const evaluationSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["overall", "technical", "behavioral", "communication"],
  "properties": {
    "overall": {"type": "number"},
    "technical": {"type": "number"},
    "behavioral": {"type": "number"},
    "communication": {"type": "number"},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "weaknesses": {"type": "array", "items": {"type": "string"}},
    "suggestions": {"type": "array", "items": {"type": "string"}},
    "perQuestion": {"type": "array", "items": {"type": "string"}}
  }
}`

func validateQuestionSet(jsonContent string) error {
	return schemas.ValidateJSONString(questionSetSchema, jsonContent)
}

func validateEvaluation(jsonContent string) error {
	return schemas.ValidateJSONString(evaluationSchema, jsonContent)
}
