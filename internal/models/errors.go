package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrInvalidPassword    = errors.New("models: invalid password")

	ErrInfluencerNotFound = errors.New("influencer not found")
	ErrBrandNotFound      = errors.New("brand not found")

	ErrProposalNotFound    = errors.New("proposal not found")
	ErrProposalResolved    = errors.New("proposal already resolved")
	ErrProposalNotAccepted = errors.New("proposal is not accepted")

	ErrChatRoomNotFound   = errors.New("chat room not found")
	ErrNotRoomParticipant = errors.New("user is not a room participant")
	ErrEmptyMessage       = errors.New("message text is empty")

	ErrContractNotFound  = errors.New("contract not found")
	ErrNotContractParty  = errors.New("user is not a contract party")
	ErrContractNotSigned = errors.New("contract is not fully signed")

	ErrPaymentNotFound = errors.New("payment not found")
	ErrAlreadyPaid     = errors.New("contract already paid")

	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrCampaignNotCompleted = errors.New("campaign is not completed")

	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("user already reviewed this campaign")
	ErrRatingRequired  = errors.New("all ratings must be between 1 and 5")

	ErrNotificationNotFound = errors.New("notification not found")
	ErrBlogNotFound         = errors.New("blog post not found")
)
