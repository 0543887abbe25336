// Package request is the boundary between raw JSON plan requests and the
// engine. It only checks that required fields are present; record
// contents are accepted as-is.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/studyhub/internal/engine"
)

// ErrMissingFields is returned when subjects or daily_time_minutes is absent.
var ErrMissingFields = errors.New("missing required fields: subjects, daily_time_minutes")

const schemaURL = "schema://plan-request.json"

// planRequestSchema requires the two fields the engine cannot default.
var planRequestSchema = map[string]any{
	"type":     "object",
	"required": []any{"subjects", "daily_time_minutes"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func requestSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, planRequestSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Parse validates and decodes a plan request.
func Parse(data []byte) (engine.Request, error) {
	var req engine.Request

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return req, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := requestSchema()
	if err != nil {
		return req, fmt.Errorf("compile request schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return req, ErrMissingFields
	}

	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

// Read is Parse over a reader.
func Read(r io.Reader) (engine.Request, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return engine.Request{}, fmt.Errorf("read request: %w", err)
	}
	return Parse(buf.Bytes())
}
