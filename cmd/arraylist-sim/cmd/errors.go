// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidConfigFormat = errors.New("invalid config format")
	ErrUnknownOp           = errors.New("unknown op")
	ErrInvalidParamCount   = errors.New("invalid param count")
	ErrInvalidIndex        = errors.New("invalid index")
	ErrInvalidOperator     = errors.New("invalid operator")
	ErrAssertionFailed     = errors.New("assertion failed")
)
