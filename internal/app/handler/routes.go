package handler

import (
	"backend/internal/app/middleware"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Витрина (публичные эндпоинты) ============
	catalog := api.Group("")
	{
		catalog.GET("/hardware", h.GetHardwareProducts)    // GET карточки оборудования
		catalog.GET("/hardware/:id", h.GetHardwareProduct) // GET одна карточка
		catalog.GET("/pricing-plans", h.GetPricingPlans)   // GET тарифы
		catalog.GET("/partners", h.GetPartners)            // GET партнёры
		catalog.GET("/gallery", h.GetGalleryImages)        // GET галерея

		// Управление витриной - только для администраторов
		catalog.POST("/hardware", authMiddleware.WithAuthCheck(role.Admin), h.CreateHardwareProduct)
		catalog.PUT("/hardware/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateHardwareProduct)
		catalog.POST("/hardware/:id/image", authMiddleware.WithAuthCheck(role.Admin), h.UploadHardwareImage)
		catalog.POST("/gallery", authMiddleware.WithAuthCheck(role.Admin), h.UploadGalleryImage)
		catalog.DELETE("/gallery/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteGalleryImage)
	}

	// ============ Входящие заявки ============
	rfqs := api.Group("/rfqs")
	{
		rfqs.POST("", h.SubmitRFQ) // POST публичная форма

		// Админка
		rfqs.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetRFQs)
		rfqs.GET("/:id", authMiddleware.WithAuthCheck(role.Admin), h.GetRFQ)
		rfqs.PUT("/:id/status", authMiddleware.WithAuthCheck(role.Admin), h.UpdateRFQStatus)
	}

	clusters := api.Group("/cluster-requests")
	{
		clusters.POST("", h.SubmitClusterRequest) // POST публичная форма

		// Админка
		clusters.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetClusterRequests)
		clusters.GET("/:id", authMiddleware.WithAuthCheck(role.Admin), h.GetClusterRequest)
		clusters.PUT("/:id/status", authMiddleware.WithAuthCheck(role.Admin), h.UpdateClusterRequestStatus)
	}

	// ============ Коммерческие предложения ============
	quotes := api.Group("/quotes")
	{
		// Клиент открывает предложение по номеру из письма (без авторизации)
		quotes.GET("/number/:number", h.GetQuoteByNumber)

		// Конструктор и управление - только администраторы
		quotes.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateQuote)
		quotes.POST("/preview", authMiddleware.WithAuthCheck(role.Admin), h.PreviewQuote)
		quotes.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetQuotes)
		quotes.GET("/:id", authMiddleware.WithAuthCheck(role.Admin), h.GetQuote)
		quotes.PUT("/:id/status", authMiddleware.WithAuthCheck(role.Admin), h.UpdateQuoteStatus)
	}

	// ============ Админ-панель ============
	admin := api.Group("/admin")
	admin.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		admin.GET("/dashboard", h.GetDashboard)   // GET все вкладки одним запросом
		admin.GET("/statistics", h.GetStatistics) // GET агрегаты по заявкам и предложениям
	}

	// ============ Оплата ============
	checkout := api.Group("/checkout")
	{
		checkout.POST("", h.CreateCheckout) // POST создание Stripe-сессии
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Customer, role.Admin), h.AuthHandler.GetUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Customer, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
