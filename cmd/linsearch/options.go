package main

import (
	"strconv"
	"strings"

	"github.com/Invicton-Labs/go-search/collections"
	"github.com/Invicton-Labs/go-search/genjson"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
)

type Options struct {
	Item       string `short:"i" long:"item" description:"Value to search for" required:"true"`
	File       string `short:"f" long:"file" env:"LINSEARCH_FILE" description:"JSON array file holding the sequence"`
	IgnoreCase bool   `long:"ignore-case" description:"Compare strings using Unicode case folding"`
	Numeric    bool   `long:"numeric" description:"Treat the item and the sequence as integers"`
	Dev        bool   `long:"dev" description:"Human-readable console logging"`
	Verbose    bool   `short:"v" long:"verbose" description:"Enable debug logging"`

	Args struct {
		Sequence []string `positional-arg-name:"element"`
	} `positional-args:"yes"`
}

func (o Options) validate() stackerr.Error {
	var err error
	if o.File != "" && len(o.Args.Sequence) > 0 {
		err = multierr.Append(err, stackerr.Errorf("a sequence file and positional elements cannot both be given"))
	}
	if o.IgnoreCase && o.Numeric {
		err = multierr.Append(err, stackerr.Errorf("--ignore-case cannot be combined with --numeric"))
	}
	if err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}

// sequence returns the elements to search, read from the file if one was given.
func (o Options) sequence() ([]string, stackerr.Error) {
	if o.File == "" {
		return o.Args.Sequence, nil
	}
	return genjson.UnmarshalFile[[]string](o.File)
}

// numericSequence returns the elements to search as integers. A file must
// hold a JSON array of numbers.
func (o Options) numericSequence() ([]int64, stackerr.Error) {
	if o.File != "" {
		return genjson.UnmarshalFile[[]int64](o.File)
	}
	return collections.TransformSliceWithErr(o.Args.Sequence, parseElement)
}

func (o Options) numericItem() (int64, stackerr.Error) {
	n, err := strconv.ParseInt(strings.TrimSpace(o.Item), 10, 64)
	if err != nil {
		return 0, stackerr.Errorf("item %q is not an integer", o.Item)
	}
	return n, nil
}

func parseElement(index int, value string) (int64, stackerr.Error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, stackerr.Errorf("element %d (%q) is not an integer", index, value)
	}
	return n, nil
}
