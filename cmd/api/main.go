package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authapp "github.com/xiebiao/bookreview/internal/application/auth"
	bookapp "github.com/xiebiao/bookreview/internal/application/book"
	reviewapp "github.com/xiebiao/bookreview/internal/application/review"
	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/infrastructure/config"
	"github.com/xiebiao/bookreview/internal/infrastructure/event"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookreview/internal/interface/http/handler"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	"github.com/xiebiao/bookreview/pkg/jwt"
	"github.com/xiebiao/bookreview/pkg/response"
)

// @title 图书书评API
// @version 1.0
// @description 图书目录与书评服务：用户注册登录、图书检索、书评与评分统计
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的Wire注入器）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 初始化事件发布（未启用时为nil，调用方无需区分）
	publisher, err := event.NewPublisher(cfg)
	if err != nil {
		log.Fatalf("初始化事件发布失败: %v", err)
	}
	defer publisher.Close()

	// 5. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenExpire)

	// 领域层
	// 图书服务依赖书评仓储的统计能力（AVG/COUNT），用于评分重算
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo, reviewRepo)

	// 应用层
	signupUseCase := authapp.NewSignupUseCase(userService, jwtManager, sessionStore)
	loginUseCase := authapp.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := authapp.NewLogoutUseCase(jwtManager, sessionStore)
	createBookUseCase := bookapp.NewCreateBookUseCase(bookService, publisher)
	listBooksUseCase := bookapp.NewListBooksUseCase(bookService, reviewRepo)
	getBookUseCase := bookapp.NewGetBookUseCase(bookService, reviewRepo)
	searchBooksUseCase := bookapp.NewSearchBooksUseCase(bookService)
	createReviewUseCase := reviewapp.NewCreateReviewUseCase(reviewRepo, bookService, txManager, publisher)
	updateReviewUseCase := reviewapp.NewUpdateReviewUseCase(reviewRepo, bookService, txManager, publisher)
	deleteReviewUseCase := reviewapp.NewDeleteReviewUseCase(reviewRepo, bookService, txManager, publisher)
	myReviewsUseCase := reviewapp.NewMyReviewsUseCase(reviewRepo)

	// 接口层
	authHandler := handler.NewAuthHandler(signupUseCase, loginUseCase, logoutUseCase)
	bookHandler := handler.NewBookHandler(createBookUseCase, listBooksUseCase, getBookUseCase, searchBooksUseCase)
	reviewHandler := handler.NewReviewHandler(createReviewUseCase, updateReviewUseCase, deleteReviewUseCase, myReviewsUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore, userRepo)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Metrics())

	// 7. 注册路由
	registerRoutes(r, authHandler, bookHandler, reviewHandler, authMiddleware)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档（生产环境建议禁用或加访问控制）
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// 认证模块
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
		}

		// 图书模块
		books := api.Group("/books")
		{
			// 公开接口
			books.GET("", bookHandler.List)
			books.GET("/search", bookHandler.Search)
			books.GET("/:id", bookHandler.Get)

			// 需要登录
			books.POST("", authMiddleware.RequireAuth(), bookHandler.Create)
			books.POST("/:id/reviews", authMiddleware.RequireAuth(), reviewHandler.Create)
			books.GET("/me/content", authMiddleware.RequireAuth(), reviewHandler.MyContent)
		}

		// 书评模块（修改/删除只能操作自己的书评）
		reviews := api.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			reviews.PUT("/:id", reviewHandler.Update)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}
	}
}
