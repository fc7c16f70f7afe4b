// Package batch runs the penetration pipeline over many strikes at once.
package batch

import (
	"errors"
	"fmt"

	"Hammerforce/internal/calc/numeric"
	"Hammerforce/internal/calc/penetration"
)

var (
	ErrNoItems      = errors.New("no items")
	ErrTooManyItems = errors.New("too many items")
)

type Input struct {
	Items []penetration.SIInput `json:"items"`
}

// Item is the outcome of one input. Exactly one of Result and Error is set.
type Item struct {
	Index  int                 `json:"index"`
	Result *penetration.Result `json:"result,omitempty"`
	Field  string              `json:"field,omitempty"`
	Error  string              `json:"error,omitempty"`
}

type Result struct {
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
	Items     []Item `json:"items"`
}

// Calculate never stops at a failing item. maxItems <= 0 means no limit.
func Calculate(in Input, maxItems int, opts ...penetration.Option) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrNoItems
	}
	if maxItems > 0 && len(in.Items) > maxItems {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(in.Items), maxItems)
	}

	out := Result{Items: make([]Item, 0, len(in.Items))}
	for i, item := range in.Items {
		out.Items = append(out.Items, run(i, item, opts))
	}
	for _, item := range out.Items {
		if item.Result != nil {
			out.Succeeded++
		} else {
			out.Failed++
		}
	}
	return out, nil
}

func run(i int, in penetration.SIInput, opts []penetration.Option) Item {
	res, err := penetration.Calculate(in, opts...)
	if err != nil {
		item := Item{Index: i, Error: err.Error()}
		var verr *numeric.ValidationError
		if errors.As(err, &verr) {
			item.Field = verr.Field
		}
		return item
	}
	return Item{Index: i, Result: &res}
}
