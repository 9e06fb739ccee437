package dataset

// Sentiment classes derived from star ratings by MapRating.
const (
	ClassNegative = 0 // ratings 1-2
	ClassNeutral  = 1 // rating 3
	ClassPositive = 2 // everything else
)

// CategoryNames maps a sentiment class to its display name.
var CategoryNames = []string{"NEG", "NEUT", "POS"}

// MapRating collapses a 1-5 star rating into a sentiment class. Ratings
// outside 1-5 fall through to positive, matching the upstream fill value.
func MapRating(rating int) int {
	switch {
	case rating == 1 || rating == 2:
		return ClassNegative
	case rating == 3:
		return ClassNeutral
	default:
		return ClassPositive
	}
}

// MapRatings derives the sentiment label of every review, in row order.
func MapRatings(reviews []Review) []int {
	labels := make([]int, len(reviews))
	for i, r := range reviews {
		labels[i] = MapRating(r.Rating)
	}
	return labels
}

// Categoricalize maps class ints back to their display names. Classes
// without a name render as "?".
func Categoricalize(labels []int) []string {
	names := make([]string, len(labels))
	for i, l := range labels {
		if l >= 0 && l < len(CategoryNames) {
			names[i] = CategoryNames[l]
		} else {
			names[i] = "?"
		}
	}
	return names
}

// Predictor produces one predicted class per document. The classifier is
// an opaque collaborator: the metrics engine only ever consumes its
// outputs.
type Predictor interface {
	Predict(docs []string) []int
}

// MostFrequent predicts the modal class of its training labels for every
// document. It is the baseline model wired into the CLI so an evaluation
// can run end to end without a real classifier.
type MostFrequent struct {
	class int
}

// TrainMostFrequent picks the modal training class, lowest class winning
// ties for determinism.
func TrainMostFrequent(labels []int) *MostFrequent {
	counts := make(map[int]int)
	best, bestCount := 0, -1
	for _, l := range labels {
		counts[l]++
		if counts[l] > bestCount || (counts[l] == bestCount && l < best) {
			best, bestCount = l, counts[l]
		}
	}
	return &MostFrequent{class: best}
}

// Predict returns the modal class for every document.
func (m *MostFrequent) Predict(docs []string) []int {
	out := make([]int, len(docs))
	for i := range out {
		out[i] = m.class
	}
	return out
}
