package domain

import (
	"errors"
	"fmt"
)

type ErrorCode uint32

// Error is a protocol error kind. Values are compared by identity, so wrap
// them with %w and test with errors.Is.
type Error struct {
	Code ErrorCode
	Name string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Msg)
}

func newError(code ErrorCode, name, msg string) *Error {
	return &Error{Code: code, Name: name, Msg: msg}
}

var (
	ErrInvalidOfferStatus        = newError(6000, "InvalidOfferStatus", "invalid offer status for this operation")
	ErrInvalidDisputeStatus      = newError(6001, "InvalidDisputeStatus", "invalid dispute status for this operation")
	ErrUnauthorized              = newError(6002, "Unauthorized", "caller is not authorized to perform this action")
	ErrInsufficientFunds         = newError(6003, "InsufficientFunds", "insufficient funds for this operation")
	ErrAlreadyVoted              = newError(6004, "AlreadyVoted", "juror has already voted")
	ErrNotAJuror                 = newError(6005, "NotAJuror", "caller is not a juror for this dispute")
	ErrDisputeAlreadyExists      = newError(6006, "DisputeAlreadyExists", "a dispute already exists for this offer")
	ErrInvalidAmount             = newError(6007, "InvalidAmount", "invalid amount")
	ErrInputTooLong              = newError(6008, "InputTooLong", "input is empty or too long")
	ErrAdminRequired             = newError(6009, "AdminRequired", "admin authority required")
	ErrTooManyEvidenceItems      = newError(6010, "TooManyEvidenceItems", "too many evidence items")
	ErrInvalidUtf8               = newError(6011, "InvalidUtf8", "input is not valid utf-8")
	ErrTiedVote                  = newError(6012, "TiedVote", "vote is tied")
	ErrMathOverflow              = newError(6013, "MathOverflow", "arithmetic overflow")
	ErrNoRewardsToClaim          = newError(6014, "NoRewardsToClaim", "no rewards to claim")
	ErrRewardTokenNotInitialized = newError(6015, "RewardTokenNotInitialized", "reward token is not initialized")
	ErrTooManyRequests           = newError(6016, "TooManyRequests", "too many requests")
	ErrInvalidEscrowBalance      = newError(6017, "InvalidEscrowBalance", "escrow balance does not match the amount owed")
	ErrDisputeExpired            = newError(6018, "DisputeExpired", "dispute deadline has passed")
	ErrInvalidCurrencyCode       = newError(6019, "InvalidCurrencyCode", "invalid currency code")

	ErrAccountNotFound      = newError(6100, "AccountNotFound", "account not found")
	ErrAccountAlreadyExists = newError(6101, "AccountAlreadyExists", "account already exists")
)

// CodeOf returns the protocol error code carried by err, if any.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// KindOf returns the protocol error carried by err, or nil.
func KindOf(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
