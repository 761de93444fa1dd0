package pricing

import "errors"

var (
	ErrPricingNotFound = errors.New("client pricing not found")
	ErrPricingExists   = errors.New("pricing already exists for this client, role and effective date")
)
