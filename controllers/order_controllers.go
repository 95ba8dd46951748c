package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardhiansyah/resto-pos/models"
	"github.com/ardhiansyah/resto-pos/services"
	"github.com/ardhiansyah/resto-pos/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Orders: services.NewOrderService(db)}
}

type checkoutItem struct {
	ID    uint    `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Qty   int     `json:"qty" binding:"required"`
	Price float64 `json:"price"`
}

type checkoutRequest struct {
	TableNumber   string         `json:"table_number" binding:"required"`
	TotalPrice    float64        `json:"total_price"`
	PaymentMethod string         `json:"payment_method"`
	Note          string         `json:"note"`
	Items         []checkoutItem `json:"items" binding:"required,min=1"`
}

// ProcessCheckout menerima keranjang dari halaman self service / kasir dan
// membuat pesanan baru lewat OrderService. Nomor pesanan dibangkitkan acak
// "#ORD-" + 4 digit; tabrakan nomor tidak dicegah.
func (oc *OrderController) ProcessCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ActionError(c, err.Error())
		return
	}

	tableNumber := utils.SanitizeText(req.TableNumber)

	// Pengecekan cepat sebelum masuk transaksi; divalidasi ulang di dalam
	// CreateOrder.
	if tableNumber != models.TableTakeaway {
		occupied, err := oc.Orders.IsTableOccupied(tableNumber)
		if err != nil {
			utils.ActionError(c, "")
			return
		}
		if occupied {
			utils.ActionError(c, "Meja ini baru saja terisi!")
			return
		}
	}

	order := models.Order{
		OrderNumber:   fmt.Sprintf("#ORD-%d", rand.Intn(9000)+1000),
		TableNumber:   tableNumber,
		TotalPrice:    req.TotalPrice,
		PaymentMethod: utils.SanitizeText(req.PaymentMethod),
		KitchenNote:   utils.SanitizeText(req.Note),
		Status:        models.OrderStatusPending,
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID:   item.ID,
			ProductName: utils.SanitizeText(item.Name),
			Qty:         item.Qty,
			Price:       item.Price,
			Subtotal:    float64(item.Qty) * item.Price,
		})
	}

	if err := oc.Orders.CreateOrder(&order, items); err != nil {
		if errors.Is(err, services.ErrTableOccupied) {
			utils.ActionError(c, "Meja ini baru saja terisi!")
			return
		}
		if errors.Is(err, services.ErrNoItems) {
			utils.ActionError(c, err.Error())
			return
		}
		utils.ErrorLogger.Printf("Checkout failed for table %s: %v", tableNumber, err)
		utils.ActionError(c, "")
		return
	}

	utils.InfoLogger.Printf("Order %s created for table %s (%d items)",
		order.OrderNumber, order.TableNumber, len(items))
	utils.ActionSuccess(c, gin.H{"order_number": order.OrderNumber})
}

// CompleteOrder menandai pesanan sudah tersaji (served).
func (oc *OrderController) CompleteOrder(c *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ActionError(c, err.Error())
		return
	}

	if err := oc.Orders.UpdateStatus(req.ID, models.OrderStatusServed); err != nil {
		utils.ActionError(c, "")
		return
	}

	utils.ActionSuccess(c, nil)
}

// UpdateOrderStatus mengeset status pesanan ke nilai yang diminta dapur
// (cooking, ready, dst). Tidak ada validasi urutan transisi di sini.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		ID     uint   `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ActionError(c, err.Error())
		return
	}

	if err := oc.Orders.UpdateStatus(req.ID, utils.SanitizeText(req.Status)); err != nil {
		utils.ActionError(c, "")
		return
	}

	utils.ActionSuccess(c, nil)
}

// GetOrderDetail -> {order, items} untuk modal detail. ID yang tidak ada
// menghasilkan payload kosong, bukan error.
func (oc *OrderController) GetOrderDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id tidak valid"))
		return
	}

	order, err := oc.Orders.OrderByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	items := []models.OrderItem{}
	if order != nil {
		items, err = oc.Orders.OrderItems(order.ID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
		"items": items,
	})
}
