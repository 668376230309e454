package virtuallist

import "errors"

var (
	ErrInvalidIndex         = errors.New("invalid item index")
	ErrNoDataSource         = errors.New("no data source configured")
	ErrNoRenderer           = errors.New("no item renderer configured")
	ErrContextNotFound      = errors.New("panel context not found")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrNoItem               = errors.New("no item at point")
)
