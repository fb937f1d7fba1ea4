// Package validation runs the form-level checks that happen before a mutation
// request is sent.
package validation

import (
	"fmt"
	"sort"
	"sync"

	apperrors "jobmarket-client/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// Form names a client-side form schema.
type Form string

const (
	FormSignIn       Form = "sign_in"
	FormRegister     Form = "register"
	FormProfile      Form = "profile"
	FormApplication  Form = "application"
	FormMessage      Form = "message"
	FormPreference   Form = "job_preference"
	FormSubscription Form = "subscription"
)

var formSchemas = map[Form]string{
	FormSignIn: `{
		"type": "object",
		"required": ["email", "password", "role"],
		"properties": {
			"email": {"type": "string", "format": "email"},
			"password": {"type": "string", "minLength": 1},
			"role": {"type": "string", "enum": ["job_seeker", "company"]}
		}
	}`,
	FormRegister: `{
		"type": "object",
		"required": ["name", "email", "password", "role"],
		"properties": {
			"name": {"type": "string", "minLength": 2, "maxLength": 100},
			"email": {"type": "string", "format": "email"},
			"password": {"type": "string", "minLength": 8, "maxLength": 128},
			"role": {"type": "string", "enum": ["job_seeker", "company"]},
			"companyName": {"type": "string", "maxLength": 200}
		}
	}`,
	FormProfile: `{
		"type": "object",
		"required": ["firstName", "lastName", "email"],
		"properties": {
			"firstName": {"type": "string", "minLength": 1, "maxLength": 100},
			"lastName": {"type": "string", "minLength": 1, "maxLength": 100},
			"email": {"type": "string", "format": "email"},
			"phone": {"type": "string", "pattern": "^\\+?[0-9 ()-]{7,20}$"},
			"headline": {"type": "string", "maxLength": 200},
			"skills": {"type": "array", "items": {"type": "string", "minLength": 1}}
		}
	}`,
	FormApplication: `{
		"type": "object",
		"properties": {
			"coverLetter": {"type": "string", "maxLength": 5000}
		}
	}`,
	FormMessage: `{
		"type": "object",
		"required": ["body"],
		"properties": {
			"body": {"type": "string", "minLength": 1, "maxLength": 5000}
		}
	}`,
	FormPreference: `{
		"type": "object",
		"properties": {
			"sectors": {"type": "array", "items": {"type": "string"}},
			"salary": {
				"type": "object",
				"properties": {
					"from": {"type": "number", "minimum": 0},
					"to": {"type": "number", "minimum": 0}
				}
			},
			"locations": {"type": "array", "items": {"type": "object"}}
		}
	}`,
	FormSubscription: `{
		"type": "object",
		"required": ["planId"],
		"properties": {
			"planId": {"type": "string", "minLength": 1}
		}
	}`,
}

var (
	compiledMu sync.Mutex
	compiled   = map[Form]*gojsonschema.Schema{}
)

func schemaFor(form Form) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if s, ok := compiled[form]; ok {
		return s, nil
	}

	raw, ok := formSchemas[form]
	if !ok {
		return nil, fmt.Errorf("unknown form %q", form)
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s schema: %w", form, err)
	}
	compiled[form] = s
	return s, nil
}

// Validate checks document against the form schema. document is marshalled
// with its json tags, so field paths match the wire names. The result is
// sorted by path and is nil when the document is valid.
func Validate(form Form, document interface{}) ([]apperrors.FieldError, error) {
	schema, err := schemaFor(form)
	if err != nil {
		return nil, err
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	fields := make([]apperrors.FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		fields = append(fields, toFieldError(desc))
	}

	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Path < fields[j].Path
	})

	return fields, nil
}

// Check is Validate folded into a single error: a fieldErrors RequestError
// when the document is invalid, or the schema failure itself.
func Check(form Form, document interface{}) error {
	fields, err := Validate(form, document)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}

func toFieldError(desc gojsonschema.ResultError) apperrors.FieldError {
	path := desc.Field()
	if path == "(root)" {
		path = ""
	}

	if desc.Type() == "required" {
		property, _ := desc.Details()["property"].(string)
		if path == "" {
			path = property
		} else {
			path = path + "." + property
		}
		return apperrors.FieldError{Path: path, Message: "is required"}
	}

	return apperrors.FieldError{Path: path, Message: desc.Description()}
}
