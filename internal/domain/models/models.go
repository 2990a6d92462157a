package models

import (
	"errors"
)

type (
	// Source is a named upstream subscription endpoint.
	Source struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}

	// ConvertRequest describes one conversion. Text, when set, is used as the
	// subscription body and Source is ignored.
	ConvertRequest struct {
		Source     string
		Text       string
		TargetHost string
		ProxyIP    string
		Port       string
	}

	ConvertResult struct {
		Links []string
	}
)

var (
	ErrInvalidData = errors.New("invalid input data")
	ErrUnfound     = errors.New("unfound data")
	ErrConflict    = errors.New("duplicate source")
	ErrExists      = errors.New("source already registered")
	ErrUpstream    = errors.New("upstream request failed")
)
