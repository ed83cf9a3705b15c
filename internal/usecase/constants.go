package usecase

import "time"

const (
	// DefaultLoadTimeout bounds how long reading the wallets file may take.
	DefaultLoadTimeout = 10 * time.Second

	// DefaultSaveTimeout bounds a save including its retries.
	DefaultSaveTimeout = 10 * time.Second
)
