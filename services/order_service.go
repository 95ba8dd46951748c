package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ardhiansyah/resto-pos/models"
)

var (
	ErrNoItems       = errors.New("pesanan harus memiliki minimal satu item")
	ErrTableOccupied = errors.New("meja sedang terisi")
)

// revenueStatuses: hanya pesanan yang sudah tersaji atau selesai yang
// dihitung sebagai pendapatan.
var revenueStatuses = []string{models.OrderStatusServed, models.OrderStatusFinished}

// OrderService menangani siklus hidup pesanan: pembuatan transaksional,
// transisi status, okupansi meja, filter daftar pesanan dan agregasi
// pendapatan.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// CreateOrder menyimpan header pesanan, seluruh itemnya, dan mengurangi
// stok produk dalam satu transaksi database. Jika salah satu langkah
// gagal, semuanya dibatalkan.
//
// Okupansi meja divalidasi ulang di dalam transaksi untuk meja non
// TAKEAWAY, supaya dua checkout yang lolos pengecekan di handler tidak
// sama-sama masuk.
func (s *OrderService) CreateOrder(order *models.Order, items []models.OrderItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if order.TableNumber != models.TableTakeaway {
			var count int64
			if err := tx.Model(&models.Order{}).
				Where("table_number = ? AND status IN ?", order.TableNumber, models.OccupiedStatuses).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrTableOccupied
			}
		}

		order.Status = models.OrderStatusPending
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		// Stok dikurangi apa adanya; tidak ada batas bawah sehingga
		// nilainya bisa menjadi negatif.
		for _, item := range items {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Qty)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// IsTableOccupied -> true jika ada pesanan di meja tersebut yang siklus
// makannya belum selesai. TAKEAWAY selalu dianggap kosong.
func (s *OrderService) IsTableOccupied(tableNumber string) (bool, error) {
	if tableNumber == models.TableTakeaway {
		return false, nil
	}

	var count int64
	err := s.DB.Model(&models.Order{}).
		Where("table_number = ? AND status IN ?", tableNumber, models.OccupiedStatuses).
		Count(&count).Error
	return count > 0, err
}

// GetBusyTables mengembalikan daftar nomor meja (tanpa TAKEAWAY) yang
// sedang terisi, untuk denah meja.
func (s *OrderService) GetBusyTables() ([]string, error) {
	var tables []string
	err := s.DB.Model(&models.Order{}).
		Distinct("table_number").
		Where("status IN ? AND table_number <> ?", models.OccupiedStatuses, models.TableTakeaway).
		Pluck("table_number", &tables).Error
	return tables, err
}

// ForceClearTable menandai semua pesanan aktif di meja tersebut sebagai
// finished. Dipakai admin/kasir untuk membereskan okupansi yang nyangkut.
// Tidak ada baris yang cocok bukan error.
func (s *OrderService) ForceClearTable(tableNumber string) error {
	return s.DB.Model(&models.Order{}).
		Where("table_number = ? AND status IN ?", tableNumber, models.OccupiedStatuses).
		Update("status", models.OrderStatusFinished).Error
}

// GetFilteredOrders mengambil pesanan terurut terbaru dulu.
// Aturan filter status:
//   - ""/kosong  -> tanpa filter status
//   - "process"  -> pending, cooking, ready (tab "Dalam Proses")
//   - "served"   -> served, finished (tab "Riwayat Selesai")
//   - "all"      -> tanpa filter status
//   - selain itu -> dicocokkan persis
//
// date (format 2006-01-02) membatasi ke tanggal kalender tersebut.
func (s *OrderService) GetFilteredOrders(date, status string) ([]models.Order, error) {
	q := s.DB.Model(&models.Order{}).Order("created_at DESC")

	if date != "" {
		start, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("tanggal tidak valid: %w", err)
		}
		q = q.Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1))
	}

	switch status {
	case "", "all":
		// tanpa filter status
	case "process":
		q = q.Where("status IN ?", []string{
			models.OrderStatusPending,
			models.OrderStatusCooking,
			models.OrderStatusReady,
		})
	case "served":
		q = q.Where("status IN ?", []string{
			models.OrderStatusServed,
			models.OrderStatusFinished,
		})
	default:
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	err := q.Find(&orders).Error
	return orders, err
}

// UpdateStatus mengeset status pesanan tanpa validasi state machine;
// transisi apa pun diperbolehkan dari layer ini.
func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	return s.DB.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

// OrderByID mengambil satu pesanan; (nil, nil) jika tidak ditemukan.
func (s *OrderService) OrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderItems mengambil item milik satu pesanan, urut sesuai penyimpanan.
func (s *OrderService) OrderItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

// OrderItemsSummary membuat ringkasan "qty x nama" yang dipisah koma,
// misal "2x Nasi Goreng, 1x Es Teh". Untuk tampilan cepat di daftar
// pesanan.
func (s *OrderService) OrderItemsSummary(orderID uint) (string, error) {
	items, err := s.OrderItems(orderID)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Qty, item.ProductName))
	}
	return strings.Join(parts, ", "), nil
}

// ---------------- Statistik pendapatan ----------------
// Semua agregasi menjumlahkan total_price pesanan berstatus served atau
// finished. Rentang tanggal dihitung di Go sebagai [start, end) supaya
// perilaku MySQL dan SQLite sama.

func (s *OrderService) IncomeToday() (float64, error) {
	start := startOfDay(time.Now())
	return s.sumIncome(&start, ptrTime(start.AddDate(0, 0, 1)))
}

// IncomeWeekly menjumlahkan pendapatan minggu berjalan; minggu ISO yang
// dimulai hari Senin.
func (s *OrderService) IncomeWeekly() (float64, error) {
	start := startOfISOWeek(time.Now())
	return s.sumIncome(&start, ptrTime(start.AddDate(0, 0, 7)))
}

func (s *OrderService) IncomeMonthly() (float64, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	return s.sumIncome(&start, ptrTime(start.AddDate(0, 1, 0)))
}

func (s *OrderService) IncomeByDate(date string) (float64, error) {
	start, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return 0, fmt.Errorf("tanggal tidak valid: %w", err)
	}
	return s.sumIncome(&start, ptrTime(start.AddDate(0, 0, 1)))
}

func (s *OrderService) IncomeAllTime() (float64, error) {
	return s.sumIncome(nil, nil)
}

func (s *OrderService) sumIncome(start, end *time.Time) (float64, error) {
	q := s.DB.Model(&models.Order{}).Where("status IN ?", revenueStatuses)
	if start != nil && end != nil {
		q = q.Where("created_at >= ? AND created_at < ?", *start, *end)
	}

	var total float64
	err := q.Select("COALESCE(SUM(total_price), 0)").Row().Scan(&total)
	return total, err
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func startOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Minggu dihitung sebagai hari ketujuh
	}
	return startOfDay(t).AddDate(0, 0, -(weekday - 1))
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
