package orders

import "spiceroute-datagen/internal/storage"

var _ OrderSink = (*storage.KafkaOrderSink)(nil)
