// Package dataset loads product-review data, derives sentiment labels
// from star ratings, and places label sequences onto workers for the
// distributed metrics engine. The classifier itself stays an opaque
// collaborator behind the Predictor interface.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Review is one product-review row.
type Review struct {
	SK      int64  // pr_review_sk, the stable review key
	Rating  int    // pr_review_rating, 1-5 stars
	Content string // pr_review_content
}

// LoadReviews reads reviews from a CSV file with a
// "pr_review_sk,pr_review_rating,pr_review_content" header. Rows with
// empty content are skipped, matching the upstream NOT NULL filter.
func LoadReviews(path string) ([]Review, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reviews CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read reviews CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("reviews CSV empty or missing header")
	}

	var reviews []Review
	for i, record := range records[1:] { // Skip header
		if len(record) < 3 {
			return nil, fmt.Errorf("reviews CSV row %d: expected 3 columns", i+2)
		}
		if record[2] == "" {
			continue
		}
		sk, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("reviews CSV row %d: invalid pr_review_sk: %w", i+2, err)
		}
		rating, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("reviews CSV row %d: invalid pr_review_rating: %w", i+2, err)
		}
		reviews = append(reviews, Review{SK: sk, Rating: rating, Content: record[2]})
	}
	return reviews, nil
}

// SplitTrainTest splits reviews on their key: rows whose key is divisible
// by 10 form the test set (10% of a dense keyspace), the rest train.
func SplitTrainTest(reviews []Review) (train, test []Review) {
	for _, r := range reviews {
		if r.SK%10 == 0 {
			test = append(test, r)
		} else {
			train = append(train, r)
		}
	}
	return train, test
}

// Contents extracts the review texts in row order.
func Contents(reviews []Review) []string {
	docs := make([]string, len(reviews))
	for i, r := range reviews {
		docs[i] = r.Content
	}
	return docs
}
