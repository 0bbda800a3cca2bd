package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"digibayt/internal/domain/models"
	appmw "digibayt/internal/middleware"
	httprouters "digibayt/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	guard   *appmw.Guard
	host    string
	port    string
}

func New(log *slog.Logger, sessionSecret, tokenSecret, host, port string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		guard:   appmw.NewGuard(tokenSecret),
		host:    host,
		port:    port,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// BuildRouters registers the public site API, the role-gated admin API and
// the debug endpoints.
func (s *Server) BuildRouters() {
	panelRoles := []models.Role{models.RoleAdmin, models.RoleSuperadmin, models.RoleEditor}

	api := s.e.Group("/api/v1")
	{
		api.POST("/setup", s.routers.Setup)
		api.POST("/login", s.routers.Login)
		api.POST("/refresh", s.routers.Refresh)
		api.POST("/logout", s.routers.Logout, s.guard.Optional)

		// public reads run under the optional guard so an admin session
		// can opt in to drafts and pending content
		api.GET("/posts", s.routers.ListPosts, s.guard.Optional)
		api.GET("/posts/:identifier", s.routers.GetPost, s.guard.Optional)
		api.GET("/authors", s.routers.ListAuthors)
		api.GET("/authors/:identifier", s.routers.GetAuthor)
		api.GET("/categories", s.routers.ListCategories)
		api.GET("/categories/:identifier", s.routers.GetCategory)
		api.GET("/tags", s.routers.ListTags)
		api.GET("/tags/:identifier", s.routers.GetTag)
		api.GET("/portfolio", s.routers.ListPortfolioItems, s.guard.Optional)
		api.GET("/portfolio/:identifier", s.routers.GetPortfolioItem, s.guard.Optional)
		api.GET("/portfolio-categories", s.routers.ListPortfolioCategories)
		api.GET("/services", s.routers.ListServiceCategories, s.guard.Optional)
		api.GET("/services/:identifier", s.routers.GetServiceCategory)
		api.POST("/contact", s.routers.SubmitContact)
		api.POST("/comments", s.routers.SubmitComment)
		api.GET("/comments", s.routers.ListComments, s.guard.Optional)

		admin := api.Group("/admin", s.guard.RequireRole(panelRoles...))
		{
			admin.GET("/me", s.routers.Me)

			admin.POST("/posts", s.routers.CreatePost)
			admin.PUT("/posts/:post_id", s.routers.UpdatePost)
			admin.DELETE("/posts/:post_id", s.routers.DeletePost)

			admin.POST("/authors", s.routers.CreateAuthor)
			admin.PUT("/authors/:author_id", s.routers.UpdateAuthor)
			admin.DELETE("/authors/:author_id", s.routers.DeleteAuthor)

			admin.POST("/categories", s.routers.CreateCategory)
			admin.PUT("/categories/:category_id", s.routers.UpdateCategory)
			admin.DELETE("/categories/:category_id", s.routers.DeleteCategory)

			admin.POST("/tags", s.routers.CreateTag)
			admin.PUT("/tags/:tag_id", s.routers.UpdateTag)
			admin.DELETE("/tags/:tag_id", s.routers.DeleteTag)

			admin.POST("/portfolio", s.routers.CreatePortfolioItem)
			admin.PUT("/portfolio/:item_id", s.routers.UpdatePortfolioItem)
			admin.DELETE("/portfolio/:item_id", s.routers.DeletePortfolioItem)

			admin.POST("/portfolio-categories", s.routers.CreatePortfolioCategory)
			admin.PUT("/portfolio-categories/:category_id", s.routers.UpdatePortfolioCategory)
			admin.DELETE("/portfolio-categories/:category_id", s.routers.DeletePortfolioCategory)

			admin.POST("/services", s.routers.CreateServiceCategory)
			admin.PUT("/services/:category_id", s.routers.UpdateServiceCategory)
			admin.DELETE("/services/:category_id", s.routers.DeleteServiceCategory)

			admin.GET("/contacts", s.routers.ListContacts)
			admin.GET("/contacts/:submission_id", s.routers.GetContact)
			admin.PUT("/contacts/:submission_id", s.routers.UpdateContact)
			admin.DELETE("/contacts/:submission_id", s.routers.DeleteContact)

			admin.PUT("/comments/:comment_id/approve", s.routers.ApproveComment)
			admin.DELETE("/comments/:comment_id", s.routers.DeleteComment)

			admin.GET("/media", s.routers.ListMedia)
			admin.POST("/media/upload", s.routers.UploadMedia)
			admin.DELETE("/media", s.routers.DeleteMedia)
			admin.POST("/media/folders", s.routers.CreateMediaFolder)

			users := admin.Group("/users", s.guard.RequireRole(models.RoleSuperadmin))
			{
				users.GET("", s.routers.ListUsers)
				users.POST("", s.routers.CreateUser)
				users.GET("/:user_id", s.routers.GetUser)
				users.PUT("/:user_id", s.routers.UpdateUser)
				users.DELETE("/:user_id", s.routers.DeleteUser)
			}
		}
	}

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
