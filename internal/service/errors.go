package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamFetch marks failures reaching or decoding the product feed.
	ErrUpstreamFetch = errors.New("upstream feed fetch failed")
	// ErrStoreUnavailable marks any failure of the transaction store.
	ErrStoreUnavailable = errors.New("transaction store unavailable")
)

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
