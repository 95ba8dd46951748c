package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardhiansyah/resto-pos/models"
	"github.com/ardhiansyah/resto-pos/services"
	"github.com/ardhiansyah/resto-pos/utils"
)

type DashboardController struct {
	Orders *services.OrderService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Orders: services.NewOrderService(db)}
}

// Index mengarahkan user ke halaman sesuai role-nya: admin ke laporan
// stok, kasir ke daftar pesanan, sisanya ke self service.
func (dc *DashboardController) Index(c *gin.Context) {
	switch c.GetString("role") {
	case models.RoleAdmin:
		c.Redirect(http.StatusFound, "/dashboard/stok")
	case models.RoleCashier:
		c.Redirect(http.StatusFound, "/dashboard/pesanan")
	default:
		c.Redirect(http.StatusFound, "/dashboard/self-service")
	}
}

// Pesanan -> daftar pesanan dengan filter tanggal dan status. Tanpa
// parameter status, tab "Dalam Proses" yang ditampilkan.
func (dc *DashboardController) Pesanan(c *gin.Context) {
	date := c.Query("date")
	status := c.Query("status")
	if status == "" {
		status = "process"
	}

	orders, err := dc.Orders.GetFilteredOrders(date, status)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rows := make([]OrderSummaryView, 0, len(orders))
	for _, o := range orders {
		summary, err := dc.Orders.OrderItemsSummary(o.ID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		rows = append(rows, OrderSummaryView{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Meja:        o.TableNumber,
			Menu:        summary,
			Status:      ucfirst(o.Status),
			Waktu:       o.CreatedAt.Format("15:04"),
			Note:        o.KitchenNote,
			TotalPrice:  o.TotalPrice,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Daftar Pesanan", gin.H{
		"pesanan":       rows,
		"filter_date":   date,
		"filter_status": status,
	})
}

// Riwayat -> laporan pendapatan plus riwayat transaksi. Dengan parameter
// date, riwayat dan income dibatasi ke tanggal tersebut.
func (dc *DashboardController) Riwayat(c *gin.Context) {
	filterDate := c.Query("date")

	today, err := dc.Orders.IncomeToday()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	weekly, err := dc.Orders.IncomeWeekly()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	monthly, err := dc.Orders.IncomeMonthly()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	allTime, err := dc.Orders.IncomeAllTime()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	data := gin.H{
		"income_today":    today,
		"income_weekly":   weekly,
		"income_monthly":  monthly,
		"income_all_time": allTime,
		"filter_date":     filterDate,
	}

	if filterDate != "" {
		filtered, err := dc.Orders.IncomeByDate(filterDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		history, err := dc.Orders.GetFilteredOrders(filterDate, "")
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		data["income_filtered"] = filtered
		data["riwayat"] = history
	} else {
		history, err := dc.Orders.GetFilteredOrders("", "")
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		data["income_filtered"] = nil
		data["riwayat"] = history
	}

	utils.RespondJSON(c, http.StatusOK, "Riwayat Transaksi", data)
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
