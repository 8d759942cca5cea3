package payloads

// SaleRecordedPayload представляет данные зафиксированной продажи,
// передаваемые через RabbitMQ.
type SaleRecordedPayload struct {
	SaleID    uint `json:"sale_id"`
	ProductID uint `json:"product_id"`
	UserID    uint `json:"user_id"`
	Quantity  int  `json:"quantity"`
}
