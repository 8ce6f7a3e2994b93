// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Plan struct {
	// The name of the plan.
	Name string `json:"name" yaml:"name"`
	// A description of the plan.
	Description string `json:"description" yaml:"description"`
	// Steps to perform, in order, against a single list.
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	// Description of the step.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// The list operation to perform. (required)
	Op Op `json:"op" yaml:"op"`
	// Positional arguments of the operation.
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
	// Compare strings case-insensitively for search and removal.
	Fold bool `json:"fold,omitempty" yaml:"fold,omitempty"`
	// Define required assertions against this step.
	Require *Require `json:"require,omitempty" yaml:"require,omitempty"`
}

type Require struct {
	// Assertions against the result of the step.
	Result ResultAssertion `json:"result" yaml:"result"`
}

type ResultAssertion struct {
	// The operator to use for the assertion.
	Operator string `json:"operator" yaml:"operator"`
	// The value to compare against, in the format of [formatValue].
	Value string `json:"value" yaml:"value"`
}

type Operator string

const (
	Eq Operator = "=="
	Ne Operator = "!="
)

type Response struct {
	// The index of the step that generated this response.
	ID int `json:"id"`
	// The operation of the step.
	Op Op `json:"op"`
	// The result of the step.
	Result Result `json:"result"`
	// The error message if available.
	Error string `json:"error,omitempty"`
}

type Result struct {
	// The value returned by the operation, if any.
	Value any `json:"value"`
	// An optional message.
	Msg string `json:"msg,omitempty"`
}

func newResponse(id int, op Op) *Response {
	return &Response{
		ID: id,
		Op: op,
	}
}

func (r *Response) setError(err error) {
	r.Error = err.Error()
}

// Print writes the response to [w] as a single JSON line.
func (r *Response) Print(w io.Writer) error {
	jsonBytes, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

// formatValue renders a step result the way assertions spell it.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ",")
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

// validateAssertion checks [actual] against [assertion].
func validateAssertion(actual any, assertion *ResultAssertion) (bool, error) {
	got := formatValue(actual)
	switch Operator(assertion.Operator) {
	case Eq:
		return got == assertion.Value, nil
	case Ne:
		return got != assertion.Value, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, assertion.Operator)
	}
}

func unmarshalPlan(bytes []byte) (*Plan, error) {
	var p Plan
	switch {
	case isJSON(string(bytes)):
		if err := json.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	case isYAML(string(bytes)):
		if err := yaml.Unmarshal(bytes, &p); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidConfigFormat
	}

	return &p, nil
}

func isJSON(s string) bool {
	var js map[string]interface{}
	return json.Unmarshal([]byte(s), &js) == nil
}

func isYAML(s string) bool {
	var y map[string]interface{}
	return yaml.Unmarshal([]byte(s), &y) == nil
}
