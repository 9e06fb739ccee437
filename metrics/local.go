package metrics

import "gonum.org/v1/gonum/mat"

// Partition-local statistic computers. All of them are pure functions over
// one partition's aligned slices: no side effects, no retained references.
// Their outputs are the only thing shipped back to the coordinator.

// localDistinct returns the distinct labels of one partition, in
// first-seen order. Sorting happens once at the coordinator.
func localDistinct(labels []int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	return out
}

// countMatches counts the rows of one partition where the prediction
// equals the truth.
func countMatches(yTrue, yPred []int) int64 {
	var n int64
	for i, label := range yTrue {
		if yPred[i] == label {
			n++
		}
	}
	return n
}

// tpfpTable is a per-class [tp, fp] count table, one row per class in the
// label space. It is both the per-partition partial statistic and the
// shape of the global sum.
type tpfpTable [][2]float64

func newTPFPTable(nclasses int) tpfpTable { return make(tpfpTable, nclasses) }

// add accumulates another table element-wise. Shapes must match because
// both sides were sized from the same resolved label space.
func (t tpfpTable) add(other tpfpTable) {
	for i := range t {
		t[i][0] += other[i][0]
		t[i][1] += other[i][1]
	}
}

// sumTPFP computes one partition's TP/FP table. A class with no positive
// predictions in this partition keeps an all-zero row; predictions outside
// the label space count toward no class.
func sumTPFP(yTrue, yPred []int, space LabelSpace) tpfpTable {
	res := newTPFPTable(space.Size())
	for i, pred := range yPred {
		c, ok := space.Index(pred)
		if !ok {
			continue
		}
		if yTrue[i] == pred {
			res[c][0]++
		} else {
			res[c][1]++
		}
	}
	return res
}

// localConfusion computes one partition's weighted confusion-matrix
// contribution: cell (t, p) accumulates the weight of rows with true
// class t and predicted class p. Rows whose true or predicted label falls
// outside the space are dropped, never errored. A nil weights slice means
// uniform weight 1 per row.
func localConfusion(yTrue, yPred []int, weights []float64, space LabelSpace) *mat.Dense {
	n := space.Size()
	cm := mat.NewDense(n, n, nil)
	for i := range yTrue {
		t, ok := space.Index(yTrue[i])
		if !ok {
			continue
		}
		p, ok := space.Index(yPred[i])
		if !ok {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		cm.Set(t, p, cm.At(t, p)+w)
	}
	return cm
}

// safeDiv divides a by b, normalizing division by zero to 0 rather than
// NaN or Inf. 0/0 cells and empty prediction buckets are data conditions,
// not failures.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
