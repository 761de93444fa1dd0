package client

import "time"

// Client - a company the agency places contractors with
type Client struct {
	ID           string
	Name         string
	ContactName  *string
	ContactEmail *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
