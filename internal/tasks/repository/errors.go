package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load task collection")
	ErrFailedToSave = errors.New("failed to save task collection")
)
