package domain

import "errors"

var (
	ErrInvalidDiscountType = errors.New("invalid discount type")
	ErrInvalidStatus       = errors.New("invalid bundle status")
)
