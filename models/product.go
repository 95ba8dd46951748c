package models

import "time"

type Product struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Category string  `gorm:"type:varchar(100)" json:"category"`
	Price    float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	// Stock dikurangi saat pesanan dibuat; tidak ada pengecekan batas bawah
	// sehingga nilainya bisa negatif.
	Stock     int       `json:"stock"`
	ImageURL  string    `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
