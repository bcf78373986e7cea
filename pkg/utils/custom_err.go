package utils

import "errors"

var (
	ErrDatabaseError   = errors.New("database error")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")

	// accounts
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	// plans
	ErrPlanNotFound   = errors.New("plan not found")
	ErrPlanInactive   = errors.New("plan is not active")
	ErrPlanReferenced = errors.New("plan is referenced by a live subscription")
	ErrPlanCodeExists = errors.New("plan code already exists")

	// subscriptions
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrSubscriptionExists    = errors.New("user already has a subscription")
	ErrSubscriptionTerminal  = errors.New("subscription is in a terminal state")
	ErrSubscriptionNotActive = errors.New("subscription is not active")

	// posts and categories
	ErrPostNotFound     = errors.New("post not found or not published")
	ErrNotPostAuthor    = errors.New("you are not the author of this post")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	// comments
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("you are not the author of this comment")
	ErrPostNotPublished = errors.New("post is not published")
	ErrParentMismatch   = errors.New("parent comment must belong to the same post")

	// pinning
	ErrNoEntitlement = errors.New("active subscription required to pin posts")
	ErrAlreadyPinned = errors.New("user already has a pinned post")
	ErrPinNotFound   = errors.New("no pinned post found")
)
