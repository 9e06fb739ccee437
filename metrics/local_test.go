package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestLocalDistinct(t *testing.T) {
	assert.ElementsMatch(t, []int{0, 2, 5}, localDistinct([]int{5, 0, 5, 2, 0}))
	assert.Empty(t, localDistinct(nil))
}

func TestCountMatches(t *testing.T) {
	assert.Equal(t, int64(3), countMatches([]int{0, 0, 1, 1}, []int{0, 1, 1, 1}))
	assert.Equal(t, int64(0), countMatches([]int{0, 1}, []int{1, 0}))
	assert.Equal(t, int64(0), countMatches(nil, nil))
}

func TestSumTPFP_WorkedScenario(t *testing.T) {
	// y_true = [0,0,1,1], y_pred = [0,1,1,1]: class 1 sees 2 TP, 1 FP.
	space := NewLabelSpace([]int{0, 1})
	table := sumTPFP([]int{0, 0, 1, 1}, []int{0, 1, 1, 1}, space)
	assert.Equal(t, [2]float64{1, 0}, table[0])
	assert.Equal(t, [2]float64{2, 1}, table[1])
}

func TestSumTPFP_EmptyPredictionBucketStaysZero(t *testing.T) {
	// Class 2 receives no positive predictions: its row is all zero, not
	// an error.
	space := NewLabelSpace([]int{0, 1, 2})
	table := sumTPFP([]int{2, 2, 0}, []int{0, 1, 0}, space)
	assert.Equal(t, [2]float64{0, 0}, table[2])
}

func TestSumTPFP_PredictionOutsideSpaceDropped(t *testing.T) {
	space := NewLabelSpace([]int{0, 1})
	table := sumTPFP([]int{0, 1}, []int{9, 1}, space)
	assert.Equal(t, [2]float64{0, 0}, table[0])
	assert.Equal(t, [2]float64{1, 0}, table[1])
}

func TestTPFPTable_AddElementWise(t *testing.T) {
	a := tpfpTable{{1, 2}, {3, 4}}
	b := tpfpTable{{10, 20}, {30, 40}}
	a.add(b)
	assert.Equal(t, tpfpTable{{11, 22}, {33, 44}}, a)
}

func TestLocalConfusion_UniformWeights(t *testing.T) {
	space := NewLabelSpace([]int{0, 1})
	cm := localConfusion([]int{0, 0, 1, 1}, []int{0, 1, 1, 1}, nil, space)
	want := mat.NewDense(2, 2, []float64{1, 1, 0, 2})
	assert.True(t, mat.Equal(want, cm), "got %v", mat.Formatted(cm))
}

func TestLocalConfusion_RowWeights(t *testing.T) {
	space := NewLabelSpace([]int{0, 1})
	cm := localConfusion([]int{0, 1}, []int{0, 0}, []float64{0.5, 2}, space)
	want := mat.NewDense(2, 2, []float64{0.5, 0, 2, 0})
	assert.True(t, mat.Equal(want, cm), "got %v", mat.Formatted(cm))
}

func TestLocalConfusion_StrayLabelsDropped(t *testing.T) {
	// A worker may see labels absent from the resolved space; those rows
	// are excluded from its contribution, never errored.
	space := NewLabelSpace([]int{0, 1})
	cm := localConfusion([]int{0, 9, 1}, []int{0, 0, 9}, nil, space)
	want := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	assert.True(t, mat.Equal(want, cm), "got %v", mat.Formatted(cm))
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 0.5, safeDiv(1, 2))
	assert.Equal(t, 0.0, safeDiv(0, 0))
	assert.Equal(t, 0.0, safeDiv(3, 0))
}
