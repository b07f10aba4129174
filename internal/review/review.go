package review

// Review is a product rating with a short write-up. IsVerifiedPurchase is
// computed once at submission from the reviewer's order history and never
// re-evaluated, even if the order's status changes later.
type Review struct {
	ID                 int    `json:"reviewId"`
	UserID             int    `json:"userId"`
	ProductID          int    `json:"productId"`
	Rating             int    `json:"rating"`
	Title              string `json:"title"`
	Comment            string `json:"comment"`
	IsVerifiedPurchase bool   `json:"isVerifiedPurchase"`
	HelpfulVotes       int    `json:"helpfulVotes"`
	IsActive           bool   `json:"isActive"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

// Vote types.
const (
	VoteHelpful    = "helpful"
	VoteNotHelpful = "not_helpful"
)

// Vote is one user's helpfulness verdict on one review.
type Vote struct {
	ID       int    `json:"voteId"`
	UserID   int    `json:"userId"`
	ReviewID int    `json:"reviewId"`
	VoteType string `json:"voteType"`
}

// VoteResult reports what a toggle did and the fresh cached counter.
type VoteResult struct {
	Action       string `json:"action"` // added, removed or updated
	HelpfulVotes int    `json:"helpfulVotes"`
}
