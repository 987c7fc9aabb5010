package income

import "errors"

var (
	ErrNoCommissionConfigured = errors.New("no commission rules configured for this project")
)
