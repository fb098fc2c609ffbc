package main

import (
	"fmt"
	"strings"

	"github.com/Invicton-Labs/go-search/collections"
	"github.com/Invicton-Labs/go-search/comparison"
	"github.com/Invicton-Labs/go-stackerr"
)

type result struct {
	Exists bool
	Index  int
	Found  bool
	Length int
}

func (r result) String() string {
	if !r.Found {
		return fmt.Sprintf("exists=%t index=absent", r.Exists)
	}
	return fmt.Sprintf("exists=%t index=%d", r.Exists, r.Index)
}

func searchFunc[T any](item T, sequence []T, equal comparison.EqualFunc[T]) result {
	index, found := collections.FindFunc(item, sequence, equal)
	return result{
		Exists: collections.ExistsFunc(item, sequence, equal),
		Index:  index,
		Found:  found,
		Length: len(sequence),
	}
}

func search(opts Options) (result, stackerr.Error) {
	if opts.Numeric {
		item, err := opts.numericItem()
		if err != nil {
			return result{}, err
		}
		numbers, err := opts.numericSequence()
		if err != nil {
			return result{}, err
		}
		return searchFunc(item, numbers, comparison.Comparator[int64]()), nil
	}

	sequence, err := opts.sequence()
	if err != nil {
		return result{}, err
	}
	equal := comparison.Comparator[string]()
	if opts.IgnoreCase {
		equal = strings.EqualFold
	}
	return searchFunc(opts.Item, sequence, equal), nil
}
