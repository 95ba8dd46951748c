package models

import "time"

// Status pesanan mengikuti alur dapur:
// pending -> cooking -> ready -> served -> finished
const (
	OrderStatusPending  = "pending"
	OrderStatusCooking  = "cooking"
	OrderStatusReady    = "ready"
	OrderStatusServed   = "served"
	OrderStatusFinished = "finished"
)

// TableTakeaway adalah sentinel nomor meja untuk pesanan bawa pulang.
// Pesanan TAKEAWAY tidak pernah dihitung menempati meja.
const TableTakeaway = "TAKEAWAY"

// OccupiedStatuses berisi status yang membuat meja dianggap terisi
// (siklus makan belum selesai).
var OccupiedStatuses = []string{
	OrderStatusPending,
	OrderStatusCooking,
	OrderStatusReady,
	OrderStatusServed,
}

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderNumber   string      `gorm:"type:varchar(20);not null" json:"order_number"`
	TableNumber   string      `gorm:"type:varchar(20);not null;index" json:"table_number"`
	TotalPrice    float64     `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_price"`
	PaymentMethod string      `gorm:"type:varchar(30)" json:"payment_method"`
	KitchenNote   string      `gorm:"type:text" json:"kitchen_note"`
	Status        string      `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}
