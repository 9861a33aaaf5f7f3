package service

import "errors"

var (
	ErrNoItems               = errors.New("no items in cart")
	ErrUnauthenticated       = errors.New("user not authenticated")
	ErrInvalidCartItem       = errors.New("invalid cart item")
	ErrPaymentNotConfigured  = errors.New("payment system not configured")
	ErrCheckoutFailed        = errors.New("checkout failed")
	ErrNotPurchased          = errors.New("you have not purchased this script")
	ErrScriptNotFound        = errors.New("script not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidProfile        = errors.New("invalid profile")
	ErrWebhookRejected       = errors.New("webhook signature verification failed")
	ErrInvalidWebhookPayload = errors.New("invalid request body")
	ErrUnknownProvider       = errors.New("unknown payment provider")
)
