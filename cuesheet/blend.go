package cuesheet

import (
	"fmt"

	"github.com/reelworks/reel/timeline"
)

// The blends a cue sheet can name. Numeric blends operate on float64 values
// (the type JSON and YAML numbers decode into); when either side is not a
// float64 they fall back to the later value, so that mixed-type sheets stay
// total.
var blends = map[string]timeline.BlendFunc{
	"sum":   numericBlend(func(a, b float64) float64 { return a + b }),
	"max":   numericBlend(func(a, b float64) float64 { return max(a, b) }),
	"min":   numericBlend(func(a, b float64) float64 { return min(a, b) }),
	"first": func(acc, next any) any { return acc },
	"last":  func(acc, next any) any { return next },
}

// BlendByName resolves a blend name used in a cue sheet.
func BlendByName(name string) (timeline.BlendFunc, error) {
	blend, ok := blends[name]
	if !ok {
		return nil, fmt.Errorf("unknown blend %q", name)
	}

	return blend, nil
}

func numericBlend(f func(a, b float64) float64) timeline.BlendFunc {
	return func(acc, next any) any {
		accF, accOK := acc.(float64)
		nextF, nextOK := next.(float64)
		if !accOK || !nextOK {
			return next
		}

		return f(accF, nextF)
	}
}
