package text

// reorderRuns returns runs, given in logical order, in visual order.
// From the highest level down to the lowest odd level, every maximal
// sequence of runs at that level or above is reversed.
func reorderRuns(runs []*Run) []*Run {
	out := append([]*Run(nil), runs...)
	var highest, lowestOdd uint8 = 0, maxLevel + 2
	for _, r := range out {
		lv := r.Item.Analysis.Level
		highest = max(highest, lv)
		if lv%2 == 1 {
			lowestOdd = min(lowestOdd, lv)
		}
	}
	for lv := highest; lv >= lowestOdd && lv > 0; lv-- {
		for i := 0; i < len(out); {
			if out[i].Item.Analysis.Level < lv {
				i++
				continue
			}
			j := i
			for j < len(out) && out[j].Item.Analysis.Level >= lv {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				out[a], out[b] = out[b], out[a]
			}
			i = j
		}
	}
	return out
}
