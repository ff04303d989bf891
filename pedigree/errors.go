package pedigree

import "errors"

var (
	ErrMissingColumn  = errors.New("sample sheet is missing a required column")
	ErrEmptySheet     = errors.New("sample sheet is empty")
	ErrParentNotFound = errors.New("no family member with the requested relationship")
)
