package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardhiansyah/resto-pos/controllers"
	"github.com/ardhiansyah/resto-pos/middlewares"
	"github.com/ardhiansyah/resto-pos/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db)
	productCtrl := controllers.NewProductController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      DASHBOARD (login required)
	// ----------------------------------------------------------------
	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())

	dashboard.GET("", dashboardCtrl.Index)

	// Halaman per role
	dashboard.GET("/meja",
		middlewares.RequireRoles(models.RoleAdmin, models.RoleCashier), tableCtrl.Meja)
	dashboard.GET("/stok",
		middlewares.RequireRoles(models.RoleAdmin), productCtrl.Stok)
	dashboard.GET("/pesanan",
		middlewares.RequireRoles(models.RoleAdmin, models.RoleCashier), dashboardCtrl.Pesanan)
	dashboard.GET("/riwayat",
		middlewares.RequireRoles(models.RoleAdmin), dashboardCtrl.Riwayat)
	dashboard.GET("/self-service",
		middlewares.RequireRoles(models.RoleAdmin, models.RoleGuest), productCtrl.SelfService)
	dashboard.GET("/users",
		middlewares.RequireRoles(models.RoleAdmin), userCtrl.GetAllUsers)

	// Manajemen meja
	dashboard.POST("/tables/add",
		middlewares.RequireRoles(models.RoleAdmin), tableCtrl.AddTable)
	dashboard.POST("/tables/reduce",
		middlewares.RequireRoles(models.RoleAdmin), tableCtrl.ReduceTable)
	dashboard.POST("/tables/clear",
		middlewares.RequireRoles(models.RoleAdmin, models.RoleCashier), tableCtrl.ClearTable)
	dashboard.POST("/tables/status", tableCtrl.CheckTableStatus)

	// Checkout dari self service / kasir
	dashboard.POST("/checkout", orderCtrl.ProcessCheckout)

	// Produk / stok
	dashboard.POST("/products/save",
		middlewares.RequireRoles(models.RoleAdmin), productCtrl.SaveProduct)
	dashboard.POST("/products/delete",
		middlewares.RequireRoles(models.RoleAdmin), productCtrl.DeleteProduct)

	// Alur pesanan
	dashboard.POST("/orders/complete",
		middlewares.RequireRoles(models.RoleAdmin, models.RoleCashier), orderCtrl.CompleteOrder)
	dashboard.POST("/orders/status",
		middlewares.RequireRoles(models.RoleAdmin, models.RoleCashier), orderCtrl.UpdateOrderStatus)
	dashboard.GET("/orders/:id", orderCtrl.GetOrderDetail)

	// Kelola pengguna
	dashboard.POST("/users/role",
		middlewares.RequireRoles(models.RoleAdmin), userCtrl.ChangeRole)

	return r
}
