package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aamagency-dev/sms-frontend/config"
	"github.com/aamagency-dev/sms-frontend/controllers"
	"github.com/aamagency-dev/sms-frontend/platform"
	"github.com/aamagency-dev/sms-frontend/services"
)

func SetupRouter(cfg config.Config, client *platform.Client, monitor *services.HealthMonitor) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	base := controllers.Base{Client: client, Cfg: cfg}
	auth := controllers.AuthController{Base: base}
	dashboard := controllers.DashboardController{Base: base}
	businesses := controllers.BusinessController{Base: base}
	pricelist := controllers.PriceListController{Base: base}
	customers := controllers.CustomerController{Base: base}
	users := controllers.UserController{Base: base}
	sms := controllers.SmsController{Base: base}
	health := controllers.HealthController{Base: base, Monitor: monitor}

	r.GET("/login", auth.LoginPage)
	r.POST("/login", auth.Login)
	r.GET("/register", auth.RegisterPage)
	r.POST("/register", auth.Register)
	r.GET("/logout", auth.Logout)

	r.GET("/healthz/snapshot", health.Snapshot)

	authed := r.Group("/")
	authed.Use(auth.SessionMiddleware())
	{
		authed.GET("", dashboard.Overview)
		authed.GET("/dashboard/sms/:id/cancel", dashboard.CancelSmsConfirm)
		authed.POST("/dashboard/sms/:id/cancel", dashboard.CancelSms)

		biz := authed.Group("/businesses")
		{
			biz.GET("", businesses.List)
			biz.GET("/new", businesses.NewForm)
			biz.POST("", businesses.Create)
			biz.GET("/:id/edit", businesses.EditForm)
			biz.POST("/:id", businesses.Update)
			biz.GET("/:id/delete", businesses.DeleteConfirm)
			biz.POST("/:id/delete", businesses.Delete)
			biz.GET("/:id/pricelist", pricelist.View)
			biz.POST("/:id/pricelist/import", pricelist.Import)
			biz.GET("/:id/pricelist/export", pricelist.Export)
		}

		cust := authed.Group("/customers")
		{
			cust.GET("", customers.List)
			cust.GET("/new", customers.NewForm)
			cust.POST("", customers.Create)
			cust.POST("/import", customers.Import)
			cust.GET("/export", customers.Export)
			cust.GET("/:id/edit", customers.EditForm)
			cust.POST("/:id", customers.Update)
			cust.GET("/:id/delete", customers.DeleteConfirm)
			cust.POST("/:id/delete", customers.Delete)
		}

		smsGroup := authed.Group("/sms")
		{
			smsGroup.GET("/conversations", sms.Conversations)
			smsGroup.GET("/conversations/:phone", sms.Conversation)
			smsGroup.POST("/conversations/:phone/reply", sms.Reply)
			smsGroup.GET("/compose", sms.ComposeForm)
			smsGroup.POST("/send", sms.Send)
		}

		authed.GET("/system-health", health.Page)

		admin := authed.Group("/admin")
		admin.Use(auth.RequireAdmin())
		{
			admin.GET("", dashboard.AdminOverview)
			admin.GET("/users", users.List)
			admin.GET("/users/new", users.NewForm)
			admin.POST("/users", users.Create)
			admin.GET("/users/:id/edit", users.EditForm)
			admin.POST("/users/:id", users.Update)
			admin.GET("/users/:id/delete", users.DeleteConfirm)
			admin.POST("/users/:id/delete", users.Delete)
		}
	}

	return r
}
