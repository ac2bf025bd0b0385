package orders

const (
	TopicOrderCreated   = "order.created"
	TopicOrderCancelled = "order.cancelled"
	TopicLowStock       = "stock.low"
)

// Partition key = order_id, supaya event satu order tetap berurutan.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
