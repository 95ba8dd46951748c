package models

import "time"

// OrderItem dibuat satu transaksi dengan Order induknya dan tidak pernah
// diubah setelahnya. ProductName adalah snapshot nama produk saat pesanan
// dibuat supaya riwayat tidak berubah ketika produk diedit.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Order disembunyikan dari JSON untuk menghindari nested rekursif
	Order       Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `gorm:"type:varchar(255);not null" json:"product_name"`
	Qty         int     `gorm:"not null" json:"qty"`
	Price       float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	Subtotal    float64 `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
