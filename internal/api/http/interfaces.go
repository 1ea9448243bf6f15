package httpapi

import "spiceroute-datagen/internal/storage"

var (
	_ ProfileSource = (*storage.Store)(nil)
	_ MenuQR        = DefaultMenuQR{}
)
