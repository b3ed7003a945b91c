package service

import "errors"

var (
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrItemNotFound     = errors.New("auction item not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrFormNotFound     = errors.New("packing list form not found")
	ErrMessageNotFound  = errors.New("chat message not found")

	ErrInvalidStatus   = errors.New("unknown shipment status")
	ErrInvalidCategory = errors.New("unknown auction category")

	ErrInvalidBid     = errors.New("bid must be higher than the current price")
	ErrItemNotListed  = errors.New("item is not open for bidding")
	ErrNotBiddable    = errors.New("item has no bids or has already been sold")
	ErrInvalidFormDef = errors.New("form definition is invalid")

	ErrDuplicateEmail     = errors.New("an admin with this email already exists")
	ErrPasswordNotSet     = errors.New("password has not been set")
	ErrAlreadyApproved    = errors.New("admin is already approved")
	ErrInvitationExpired  = errors.New("invitation link has expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotApproved        = errors.New("account has not been approved by an administrator yet")
	ErrWrongPassword      = errors.New("incorrect current password")
	ErrInvalidPermission  = errors.New("unknown permission")

	// ErrInvalidSubmission wraps the per-field validation message.
	ErrInvalidSubmission = errors.New("submission does not satisfy the form schema")

	ErrNotMessageAuthor = errors.New("only the author can modify a chat message")
	ErrEditWindowClosed = errors.New("the edit window for this message has closed")

	ErrAIUnavailable = errors.New("ai service is not configured")
)
