package hubspot

import "errors"

var (
	ErrUpstream     = errors.New("HubSpot request failed")
	ErrMissingToken = errors.New("HUBSPOT_ACCESS_TOKEN is not configured")
	ErrDealNotFound = errors.New("Deal not found")
)
