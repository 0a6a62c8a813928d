package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/CM6156/CoilmasterThailand/backend/config"
	"github.com/CM6156/CoilmasterThailand/backend/internal/api/handler"
	"github.com/CM6156/CoilmasterThailand/backend/internal/api/middleware"
	"github.com/CM6156/CoilmasterThailand/backend/internal/i18n"
	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/metrics"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// Deps 路由依赖
type Deps struct {
	Config      *config.Config
	Handler     *handler.Handler
	Auth        middleware.Authenticator
	Failer      *response.Failer
	RateLimiter *middleware.RateLimiter
	Metrics     metrics.Recorder
	Gatherer    prometheus.Gatherer
	HealthCheck func(ctx context.Context) error // 可为 nil
	Logger      *zap.Logger
}

// Setup 初始化并返回 Gin 路由引擎
func Setup(d Deps) *gin.Engine {
	cfg := d.Config
	h := d.Handler

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查与指标 ──
	r.GET("/health", health(d.HealthCheck))
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(d.Gatherer)))
	}

	// ── API v1 ──
	store := cookie.NewStore([]byte(cfg.Auth.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		Domain:   cfg.Auth.Cookie.Domain,
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		Secure:   cfg.Auth.Cookie.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	defLang, _ := i18n.Parse(cfg.I18n.DefaultLanguage)

	v1 := r.Group("/api/v1")
	v1.Use(sessions.Sessions(middleware.SessionName, store))
	v1.Use(middleware.Language(defLang))
	{
		// 认证模块（无需认证，按 IP 限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.RateLimiter.Middleware("login"), h.Auth.Login)
			auth.POST("/signup", d.RateLimiter.Middleware("signup"), h.Auth.Signup)
			// 会话已失效时同样允许登出并清除 Cookie
			auth.POST("/logout", h.Auth.Logout)
		}

		// 多语言（登录页同样需要文案）
		v1.POST("/translations", h.Translation.Get)
		v1.PUT("/i18n/language", h.Translation.SetLanguage)

		// 需要会话的路由
		authorized := v1.Group("")
		authorized.Use(middleware.SessionAuth(d.Auth, d.Failer))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/translations", perm(d, model.PermTranslationsManage), h.Translation.Upsert)

			// 用户模块
			users := authorized.Group("/users")
			{
				users.GET("", perm(d, model.PermUsersManage), h.User.List)
				users.PUT("/me", h.User.UpdateMe)
			}

			read := perm(d, model.PermDataRead)
			write := perm(d, model.PermDataWrite)

			customers := authorized.Group("/customers")
			{
				customers.GET("", read, h.Customer.List)
				customers.POST("", write, h.Customer.Create)
			}

			products := authorized.Group("/products")
			{
				products.GET("", read, h.Product.List)
				products.POST("", write, h.Product.Create)
				products.PUT("/:id/shipping", write, h.Product.UpdateShipping)
			}

			processes := authorized.Group("/processes")
			{
				processes.GET("", read, h.Process.List)
				processes.POST("", write, h.Process.Create)
			}

			equipments := authorized.Group("/equipments")
			{
				equipments.GET("", read, h.Equipment.List)
				equipments.POST("", write, h.Equipment.Create)
			}

			materials := authorized.Group("/materials")
			{
				materials.GET("", read, h.Material.List)
				materials.POST("", write, h.Material.Create)
			}

			requirements := authorized.Group("/production-requirements")
			{
				requirements.GET("", read, h.Requirement.List)
				requirements.POST("", write, h.Requirement.Create)
			}

			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", read, h.Notification.List)
				notifications.POST("", write, h.Notification.Create)
			}

			authorized.POST("/costs/calculate", read, h.Cost.Calculate)

			export := authorized.Group("/export")
			{
				export.GET("/products", read, h.Export.Products)
				export.GET("/shipping.ics", read, h.Export.Shipping)
			}
		}
	}

	return r
}

func perm(d Deps, p model.Permission) gin.HandlerFunc {
	return middleware.RequirePermission(d.Failer, p)
}

// health 存活检查，数据库不可达时返回 503
func health(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
