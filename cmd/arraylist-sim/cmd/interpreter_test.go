// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected *Step
		wantErr  bool
	}{
		{"Blank", "   ", nil, false},
		{"Comment", "# add a", nil, false},
		{"NoParams", "size", &Step{Op: OpSize, Params: []string{}}, false},
		{"Quoted", `add "hello world"`, &Step{Op: OpAdd, Params: []string{"hello world"}}, false},
		{"Insert", "insert 0 'a b'", &Step{Op: OpInsert, Params: []string{"0", "a b"}}, false},
		{"Unterminated", `add "oops`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			step, err := parseLine(tt.line)
			if tt.wantErr {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.Equal(tt.expected, step)
		})
	}
}

func TestInterpret(t *testing.T) {
	require := require.New(t)
	e, err := newExecutor(logging.NoLog{}, false)
	require.NoError(err)

	script := `
# build a list
add a
add "b c"
add a
bogus
remove-all a
to-array
size
`
	var out bytes.Buffer
	require.NoError(interpret(logging.NoLog{}, e, strings.NewReader(script), &out))

	var responses []Response
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp Response
		require.NoError(json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	require.Len(responses, 7)

	for i, resp := range responses {
		require.Equal(i, resp.ID)
	}
	require.Equal(true, responses[0].Result.Value)
	require.Contains(responses[3].Error, ErrUnknownOp.Error())
	require.Equal(true, responses[4].Result.Value)
	require.Equal([]any{"b c"}, responses[5].Result.Value)
	require.Equal(float64(1), responses[6].Result.Value)
}
