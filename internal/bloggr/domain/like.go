package domain

import (
	"fmt"
	"time"
)

type LikeStatus string

const (
	LikeNone    LikeStatus = "None"
	LikeLike    LikeStatus = "Like"
	LikeDislike LikeStatus = "Dislike"
)

// ParseLikeStatus accepts exactly the three wire values.
func ParseLikeStatus(s string) (LikeStatus, error) {
	switch LikeStatus(s) {
	case LikeNone, LikeLike, LikeDislike:
		return LikeStatus(s), nil
	}
	return "", fmt.Errorf("unknown like status %q", s)
}

// LikeDetail is one entry of a post's newest likes.
type LikeDetail struct {
	UserID    string
	UserLogin string
	AddedAt   time.Time
}

// LikesSummary aggregates the reactions on a post or comment from the
// point of view of one viewer.
type LikesSummary struct {
	Likes    int
	Dislikes int
	MyStatus LikeStatus
	Newest   []LikeDetail
}
