// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAssertion(t *testing.T) {
	tests := []struct {
		name      string
		actual    any
		assertion ResultAssertion
		expected  bool
		wantErr   error
	}{
		{"IntEqual", 3, ResultAssertion{Operator: string(Eq), Value: "3"}, true, nil},
		{"IntNotEqual", 3, ResultAssertion{Operator: string(Ne), Value: "4"}, true, nil},
		{"BoolEqual", true, ResultAssertion{Operator: string(Eq), Value: "true"}, true, nil},
		{"BoolMismatch", false, ResultAssertion{Operator: string(Eq), Value: "true"}, false, nil},
		{"StringEqual", "a", ResultAssertion{Operator: string(Eq), Value: "a"}, true, nil},
		{"SliceEqual", []string{"a", "c"}, ResultAssertion{Operator: string(Eq), Value: "a,c"}, true, nil},
		{"AbsentEqualsEmpty", nil, ResultAssertion{Operator: string(Eq), Value: ""}, true, nil},
		{"UnknownOperator", 1, ResultAssertion{Operator: ">", Value: "0"}, false, ErrInvalidOperator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			result, err := validateAssertion(tt.actual, &tt.assertion)
			require.ErrorIs(err, tt.wantErr)
			require.Equal(tt.expected, result)
		})
	}
}

func TestUnmarshalPlan(t *testing.T) {
	require := require.New(t)

	yamlPlan := `
name: basic
description: add and remove
steps:
  - description: add a
    op: add
    params: [a]
  - op: insert
    params: [0, b]
  - op: contains
    params: [A]
    fold: true
    require:
      result:
        operator: "=="
        value: "true"
`
	p, err := unmarshalPlan([]byte(yamlPlan))
	require.NoError(err)
	require.Equal("basic", p.Name)
	require.Len(p.Steps, 3)
	require.Equal(OpAdd, p.Steps[0].Op)
	require.Equal([]string{"0", "b"}, p.Steps[1].Params)
	require.True(p.Steps[2].Fold)
	require.NotNil(p.Steps[2].Require)
	require.Equal("true", p.Steps[2].Require.Result.Value)

	jsonPlan := `{"name":"json","steps":[{"op":"size","require":{"result":{"operator":"==","value":"0"}}}]}`
	p, err = unmarshalPlan([]byte(jsonPlan))
	require.NoError(err)
	require.Equal("json", p.Name)
	require.Equal(OpSize, p.Steps[0].Op)
	require.Equal(string(Eq), p.Steps[0].Require.Result.Operator)

	_, err = unmarshalPlan([]byte("just words"))
	require.ErrorIs(err, ErrInvalidConfigFormat)
}

func TestResponsePrint(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	resp := newResponse(2, OpToArray)
	resp.Result = Result{Value: []string{"a", "b"}}
	require.NoError(resp.Print(&buf))

	var decoded map[string]any
	require.NoError(json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(float64(2), decoded["id"])
	require.Equal("to-array", decoded["op"])
	require.NotContains(decoded, "error")
	require.Equal([]any{"a", "b"}, decoded["result"].(map[string]any)["value"])
}
