package controllers

// View struct eksplisit per endpoint; mapping field dilakukan manual di
// controller, bukan reflection dari row database.

// OrderSummaryView adalah satu baris di halaman daftar pesanan.
type OrderSummaryView struct {
	ID          uint    `json:"id"`
	OrderNumber string  `json:"order_number"`
	Meja        string  `json:"meja"`
	Menu        string  `json:"menu"`
	Status      string  `json:"status"`
	Waktu       string  `json:"waktu"`
	Note        string  `json:"note"`
	TotalPrice  float64 `json:"total_price"`
}

// ProductView dipakai halaman stok dan menu self service.
type ProductView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	ImageURL string  `json:"image_url"`
}

// UserView untuk halaman kelola pengguna; password tidak pernah ikut.
type UserView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
