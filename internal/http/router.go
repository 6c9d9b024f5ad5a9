package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/fasalmbt/complainto/internal/http/handlers"
	"github.com/fasalmbt/complainto/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ach *handlers.AccountHandlers, ch *handlers.ComplaintHandlers, authmw *middleware.AuthMW, cb *middleware.CasbinMW, rl *middleware.RateLimitMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	api.POST("/register", ah.Register)
	api.POST("/login", rl.Limit(), ah.Login)
	api.POST("/forgot-password", rl.Limit(), ah.ForgotPassword)
	api.POST("/reset-password", ah.ResetPassword)
	api.POST("/send-otp", rl.Limit(), ah.SendOTP)
	api.POST("/verify-otp", ah.VerifyOTP)

	authed := api.Group("/").Use(authmw.WithBearer())
	authed.POST("/change-password", ah.ChangePassword)
	authed.GET("/profile", ach.Profile)
	authed.PUT("/profile", ach.UpdateProfile)
	authed.DELETE("/account", ach.DeleteAccount)
	authed.POST("/complaints", ch.Create)
	authed.GET("/complaints", ch.ListMine)

	adm := api.Group("/admin").Use(authmw.WithBearer(), cb.Enforce())
	adm.GET("/complaints", ch.ListAll)
	adm.PUT("/complaints/:id", ch.UpdateStatus)

	return r
}
