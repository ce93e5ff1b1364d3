package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
