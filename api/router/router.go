package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blogger/api/auth"
	"blogger/api/handlers"
	"blogger/api/middleware"
	_ "blogger/docs"
	"blogger/services"
)

// Options wires the router to its collaborators.
type Options struct {
	Blogs *services.BlogService
	Gate  *auth.Gate
	// Health reports store reachability for /health. Nil means always ok.
	Health       func(ctx context.Context) error
	CORSOrigins  []string
	MaxBodyBytes int64
}

func New(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestTrace(), middleware.BodyLimit(opts.MaxBodyBytes))

	r.GET("/blogger/test", func(c *gin.Context) {
		c.String(http.StatusOK, "hii from server, I am alive btw")
	})

	r.GET("/health", func(c *gin.Context) {
		if opts.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := opts.Health(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireIdentity := middleware.RequireIdentity(opts.Gate)
	blog := r.Group("/blog")
	{
		blog.POST("/create", requireIdentity, handlers.CreateBlogHandler(opts.Blogs))
		blog.POST("/delete", requireIdentity, handlers.DeleteBlogHandler(opts.Blogs))
		blog.GET("/get", handlers.ListBlogsHandler(opts.Blogs))
		blog.POST("/update", requireIdentity, handlers.UpdateBlogHandler(opts.Blogs))
		blog.GET("/getmyblogs", requireIdentity, handlers.ListMyBlogsHandler(opts.Blogs))
		blog.GET("/getblog/:blog_id", requireIdentity, handlers.GetBlogHandler(opts.Blogs))
	}

	return r
}

// NewHandler wraps the router with the CORS policy. Credentials are allowed
// so the accessToken cookie reaches the gate.
func NewHandler(opts Options) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	})
	return c.Handler(New(opts))
}
