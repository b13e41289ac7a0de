package handler

import "errors"

var (
	errAddressRequired = errors.New("'address' is required for a check-in reminder")
)
