package analyzer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/g-m-twostay/ordtree/Trees"
)

// Tree is the index the analyzer works on.
type Tree = Trees.OrderedTree[int, uint32]

// Strategy of bulk construction.
type Strategy string

const (
	StrategyNaive  Strategy = "naive"
	StrategyMedian Strategy = "median"
	StrategyAVL    Strategy = "avl"
)

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(s)); st {
	case StrategyNaive, StrategyMedian, StrategyAVL:
		return st, nil
	}
	return "", fmt.Errorf("unknown strategy %q, expected one of %s, %s, %s", s, StrategyNaive, StrategyMedian, StrategyAVL)
}

// Build a tree from keys.
func (s Strategy) Build(keys []int) *Tree {
	switch s {
	case StrategyNaive:
		return Trees.BuildNaive[int, uint32](keys)
	case StrategyAVL:
		return Trees.BuildSelfBalancing[int, uint32](keys)
	default:
		return Trees.BuildMedianBalanced[int, uint32](keys)
	}
}

// parseKeys accepts keys as separate arguments, comma separated, or both.
// Every bad token is reported.
func parseKeys(args []string) ([]int, error) {
	var keys []int
	var errs []error
	for _, arg := range args {
		for _, tok := range strings.Split(arg, ",") {
			if tok = strings.TrimSpace(tok); tok == "" {
				continue
			}
			k, err := strconv.Atoi(tok)
			if err != nil {
				errs = append(errs, fmt.Errorf("invalid key %q: %w", tok, err))
				continue
			}
			keys = append(keys, k)
		}
	}
	return keys, errors.Join(errs...)
}
