package models

// Order is the canonical read shape of an order: the flat user_id/product_id
// foreign keys are resolved into fully populated nested objects.
type Order struct {
	// ID is the server-assigned unique identifier of the order.
	ID int64 `json:"id"`

	// User is the account that placed the order.
	User User `json:"user"`

	// Product is the ordered catalog entry. The storage schema holds exactly
	// one product reference per order.
	Product Product `json:"product"`

	// Date is the calendar date the order was placed.
	Date Date `json:"date"`

	// IsDelivered reports whether the order has been delivered.
	IsDelivered bool `json:"is_delivered"`
}

// OrderIn is the inbound shape for creating or fully replacing an order:
// flat references plus the order's own fields.
type OrderIn struct {
	UserID      int64 `json:"user_id"`
	ProductID   int64 `json:"product_id"`
	Date        Date  `json:"date"`
	IsDelivered bool  `json:"is_delivered"`
}

// OrderCreated is the response shape of order creation. It deliberately
// mirrors the flat row that was just inserted instead of re-fetching and
// nesting the referenced user and product; reads return [Order].
type OrderCreated struct {
	ID          int64 `json:"id"`
	UserID      int64 `json:"user_id"`
	ProductID   int64 `json:"product_id"`
	Date        Date  `json:"date"`
	IsDelivered bool  `json:"is_delivered"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
