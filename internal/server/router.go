package server

import (
	"github.com/adworks/marketing-backend/internal/handler"
	"github.com/adworks/marketing-backend/internal/middleware"
	"github.com/adworks/marketing-backend/internal/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// contentRoutes holds the per-kind route names. The original exposed three
// near-identical route sets; here they are generated from one table.
var contentRoutes = map[model.ContentKind]struct {
	add, list, get, update, del string
}{
	model.KindBlog:        {"addblog", "getblogs", "blog", "updateBlog", "deleteBlog"},
	model.KindInfographic: {"addinfographics", "getinfographics", "infographics", "updateInfographics", "deleteInfographics"},
	model.KindArticle:     {"addarticles", "getarticles", "articles", "updateArticles", "deleteArticles"},
}

func setupRouter(h *Handlers, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.SetTrustedProxies(nil)

	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.GET("/", handler.Liveness)
	r.GET("/health", handler.Health)

	api := r.Group("/api")

	// Content routes, one parameterized set per kind
	for kind, paths := range contentRoutes {
		api.POST("/"+paths.add, h.Content.Create(kind))
		api.GET("/"+paths.list, h.Content.List(kind))
		api.GET("/"+paths.get+"/:id", h.Content.Get(kind))
		api.PUT("/"+paths.update+"/:id", h.Content.Update(kind))
		api.DELETE("/"+paths.del+"/:id", h.Content.Delete(kind))
	}

	// Contact routes
	api.GET("/getContact", h.Contact.List)
	api.POST("/postContact", h.Contact.Submit)
	api.PUT("/updateContact/:id", handler.NotImplemented("update contact"))
	api.DELETE("/deleteContact/:id", handler.NotImplemented("delete contact"))

	// User routes
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)
	api.PUT("/updateUser/:id", handler.NotImplemented("update user"))
	api.DELETE("/deleteUser/:id", handler.NotImplemented("delete user"))

	// Email notification routes
	api.POST("/send-email", h.Notify.Signup)
	api.POST("/downloadmedia-kit", h.Notify.DownloadMediaKit)
	api.POST("/downloadcase-studies", h.Notify.DownloadCaseStudies)

	return r
}
