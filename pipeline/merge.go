package pipeline

import "github.com/philipp01105/conlog/core"

// Merge groups items into runs and appends one Batch per run to dst.
//
// A run takes the first pending item as its accumulator and absorbs the
// following items while they have the same level. The accumulator keeps
// its color unless it has none, in which case the first set color wins.
// An item whose set color differs from the run color ends the run even
// when the level still matches.
func Merge(items []core.Item, dst []core.Batch) []core.Batch {
	for i := 0; i < len(items); {
		acc := core.SingleBatch(items[i])
		i++
		for ; i < len(items); i++ {
			next := items[i]
			if next.Level != acc.Level {
				break
			}
			if next.Color.IsSet() && acc.Color.IsSet() && next.Color != acc.Color {
				break
			}
			if !acc.Color.IsSet() {
				acc.Color = next.Color
			}
			acc.Lines = append(acc.Lines, core.Line{Time: next.Time, Message: next.Message})
		}
		dst = append(dst, acc)
	}
	return dst
}
