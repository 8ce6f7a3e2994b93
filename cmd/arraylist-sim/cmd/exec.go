// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/collections/arraylist"
	"github.com/ava-labs/collections/arrays"
	"github.com/ava-labs/collections/utils"
)

type Op string

const (
	OpAdd         Op = "add"
	OpInsert      Op = "insert"
	OpFirst       Op = "first"
	OpLast        Op = "last"
	OpAt          Op = "at"
	OpIndexOf     Op = "index-of"
	OpLastIndexOf Op = "last-index-of"
	OpFrequency   Op = "frequency"
	OpContains    Op = "contains"
	OpRemove      Op = "remove"
	OpRemoveAll   Op = "remove-all"
	OpRemoveAt    Op = "remove-at"
	OpClear       Op = "clear"
	OpSwap        Op = "swap"
	OpForEach     Op = "for-each"
	OpReverse     Op = "reverse"
	OpToArray     Op = "to-array"
	OpSize        Op = "size"
	OpIsEmpty     Op = "is-empty"
	OpString      Op = "string"
	OpHistory     Op = "history"
)

const defaultHistorySize = 32

// arity is the inclusive range of params an op accepts.
type arity struct {
	min, max int
}

var ops = map[Op]arity{
	OpAdd:         {1, 1},
	OpInsert:      {2, 2},
	OpFirst:       {0, 0},
	OpLast:        {0, 0},
	OpAt:          {1, 1},
	OpIndexOf:     {1, 1},
	OpLastIndexOf: {1, 1},
	OpFrequency:   {1, 1},
	OpContains:    {1, 1},
	OpRemove:      {1, 1},
	OpRemoveAll:   {1, 1},
	OpRemoveAt:    {1, 1},
	OpClear:       {0, 0},
	OpSwap:        {2, 2},
	OpForEach:     {0, 1},
	OpReverse:     {0, 0},
	OpToArray:     {0, 0},
	OpSize:        {0, 0},
	OpIsEmpty:     {0, 0},
	OpString:      {0, 0},
	OpHistory:     {0, 0},
}

func verifyStep(step *Step) error {
	a, ok := ops[step.Op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	if n := len(step.Params); n < a.min || n > a.max {
		return fmt.Errorf("%w: %s takes %d to %d params, got %d", ErrInvalidParamCount, step.Op, a.min, a.max, n)
	}
	return nil
}

// executor applies steps to a single list of strings.
type executor struct {
	log     logging.Logger
	list    *arraylist.List[string]
	fold    bool
	history utils.BoundedBuffer[string]
}

func newExecutor(log logging.Logger, fold bool) (*executor, error) {
	history, err := utils.NewBoundedBuffer[string](defaultHistorySize, nil)
	if err != nil {
		return nil, err
	}
	return &executor{
		log:     log,
		list:    arraylist.New[string](),
		fold:    fold,
		history: history,
	}, nil
}

func (e *executor) equals(fold bool) utils.EqualsFunc[string] {
	if fold || e.fold {
		return strings.EqualFold
	}
	return nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	return i, nil
}

func element(v string, ok bool) Result {
	if !ok {
		return Result{Msg: "absent"}
	}
	return Result{Value: v}
}

// exec runs [step] against the list. Errors are reserved for malformed
// steps; an operation that fails on the list reports it in the result.
// Only steps that ran are recorded in the history.
func (e *executor) exec(step *Step) (Result, error) {
	if err := verifyStep(step); err != nil {
		return Result{}, err
	}
	e.log.Debug("executing step",
		zap.String("op", string(step.Op)),
		zap.Strings("params", step.Params),
		zap.Bool("fold", step.Fold),
	)
	result, err := e.apply(step)
	if err != nil {
		return Result{}, err
	}
	if step.Op != OpHistory {
		e.history.Insert(strings.TrimSpace(string(step.Op) + " " + strings.Join(step.Params, " ")))
	}
	return result, nil
}

func (e *executor) apply(step *Step) (Result, error) {
	l := e.list
	eq := e.equals(step.Fold)
	switch step.Op {
	case OpAdd:
		return Result{Value: l.Add(step.Params[0])}, nil
	case OpInsert:
		i, err := parseIndex(step.Params[0])
		if err != nil {
			return Result{}, err
		}
		return Result{Value: l.Insert(i, step.Params[1])}, nil
	case OpFirst:
		return element(l.First()), nil
	case OpLast:
		return element(l.Last()), nil
	case OpAt:
		i, err := parseIndex(step.Params[0])
		if err != nil {
			return Result{}, err
		}
		return element(l.ElementAt(i)), nil
	case OpIndexOf:
		return Result{Value: l.IndexOfFunc(step.Params[0], eq)}, nil
	case OpLastIndexOf:
		return Result{Value: arrays.LastIndexOf(l.ToSlice(), step.Params[0], eq)}, nil
	case OpFrequency:
		return Result{Value: arrays.Frequency(l.ToSlice(), step.Params[0], eq)}, nil
	case OpContains:
		return Result{Value: l.ContainsFunc(step.Params[0], eq)}, nil
	case OpRemove:
		return Result{Value: l.RemoveFunc(step.Params[0], eq)}, nil
	case OpRemoveAll:
		return Result{Value: l.RemoveAllFunc(step.Params[0], eq)}, nil
	case OpRemoveAt:
		i, err := parseIndex(step.Params[0])
		if err != nil {
			return Result{}, err
		}
		return element(l.RemoveAt(i)), nil
	case OpClear:
		l.Clear()
		return Result{}, nil
	case OpForEach:
		// visit up to and including the first element matching the stop param
		visited := []string{}
		stop := equalsOrExact(eq)
		l.ForEach(func(v string) bool {
			visited = append(visited, v)
			return len(step.Params) == 0 || !stop(v, step.Params[0])
		})
		return Result{Value: visited}, nil
	case OpSwap:
		i, err := parseIndex(step.Params[0])
		if err != nil {
			return Result{}, err
		}
		j, err := parseIndex(step.Params[1])
		if err != nil {
			return Result{}, err
		}
		// the slice aliases the list, so the swap lands in place
		return Result{Value: arrays.Swap(l.ToSlice(), i, j)}, nil
	case OpReverse:
		l.Reverse()
		return Result{}, nil
	case OpToArray:
		return Result{Value: append([]string{}, l.ToSlice()...)}, nil
	case OpSize:
		return Result{Value: l.Size()}, nil
	case OpIsEmpty:
		return Result{Value: l.IsEmpty()}, nil
	case OpString:
		return Result{Value: l.String()}, nil
	case OpHistory:
		return Result{Value: e.history.Items()}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
}

func equalsOrExact(eq utils.EqualsFunc[string]) utils.EqualsFunc[string] {
	if eq != nil {
		return eq
	}
	return func(a, b string) bool { return a == b }
}
