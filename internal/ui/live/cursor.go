package live

import "quizpage/internal/render"

// optionCounts returns the number of options of each question.
func optionCounts(tree render.Tree) []int {
	counts := make([]int, len(tree.Questions))
	for i, block := range tree.Questions {
		counts[i] = len(block.Options)
	}
	return counts
}

// moveCursor steps delta options through the flattened option list,
// clamping at both ends.
func moveCursor(counts []int, cursor render.Cursor, delta int) render.Cursor {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return render.Cursor{}
	}
	flat := flatten(counts, cursor) + delta
	flat = max(0, min(flat, total-1))
	return unflatten(counts, flat)
}

// jumpQuestion moves to the first option of a neighbouring question.
func jumpQuestion(counts []int, cursor render.Cursor, delta int) render.Cursor {
	if len(counts) == 0 {
		return render.Cursor{}
	}
	q := max(0, min(cursor.Question+delta, len(counts)-1))
	return render.Cursor{Question: q, Option: 0}
}

func flatten(counts []int, cursor render.Cursor) int {
	flat := 0
	for q := 0; q < cursor.Question && q < len(counts); q++ {
		flat += counts[q]
	}
	return flat + cursor.Option
}

func unflatten(counts []int, flat int) render.Cursor {
	for q, n := range counts {
		if flat < n {
			return render.Cursor{Question: q, Option: flat}
		}
		flat -= n
	}
	last := len(counts) - 1
	return render.Cursor{Question: last, Option: max(counts[last]-1, 0)}
}
