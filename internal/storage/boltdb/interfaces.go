package boltdb

import "github.com/iudanet/passkeeper/internal/storage"

var (
	_ storage.ProfileStorage  = (*Storage)(nil)
	_ storage.SettingsStorage = (*Storage)(nil)
	_ storage.KeyStorage      = (*Storage)(nil)
)
