// internal/domain/review/entity.go
package review

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidReview   = errors.New("review: invalid")
	ErrAlreadyReviewed = errors.New("review: user already reviewed this product")
	ErrNotEligible     = errors.New("review: user has no delivered order with this product")
)

// Review is one user's review of one product.
// At most one review exists per (UserID, ProductID); the storage layer
// enforces this by keying the document on UserID.
type Review struct {
	UserID    string    `json:"userId" firestore:"userId"`
	UserName  string    `json:"userName" firestore:"userName"`
	ProductID string    `json:"productId" firestore:"productId"`
	Rating    int       `json:"rating" firestore:"rating"` // 1..5
	Comment   string    `json:"comment" firestore:"comment"`
	Date      time.Time `json:"date" firestore:"date"`
}

// New validates and builds a review.
func New(userID, userName, productID string, rating int, comment string, now time.Time) (*Review, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	c := strings.TrimSpace(comment)
	if uid == "" || pid == "" || c == "" {
		return nil, ErrInvalidReview
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidReview
	}
	return &Review{
		UserID:    uid,
		UserName:  strings.TrimSpace(userName),
		ProductID: pid,
		Rating:    rating,
		Comment:   c,
		Date:      now,
	}, nil
}

// Aggregate recomputes the denormalized product rating from the full review
// list: average rounded to one decimal, plus the count. Reading every review
// is O(n) per submission but matches what is stored (no running sum is kept).
func Aggregate(reviews []Review) (rating float64, count int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10, len(reviews)
}
