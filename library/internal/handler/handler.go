package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Randazzz/LibraryAPI/library/internal/model"
	"github.com/Randazzz/LibraryAPI/library/internal/service"
	"github.com/Randazzz/LibraryAPI/pkg/auth"
	md "github.com/Randazzz/LibraryAPI/pkg/middleware"
	"github.com/Randazzz/LibraryAPI/pkg/validate"
	_ "github.com/Randazzz/LibraryAPI/swagger"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Validator = validate.NewCustomValidator(
		validate.WithCustomTypeFunc(model.OptionalValue, model.OptionalTypes()...),
	)

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
	)

	var (
		authenticated = h.authenticate(auth.AccessToken)
		admin         = h.require(service.AdminRequired)
		superuser     = h.require(service.SuperuserRequired)
	)

	api.POST("/auth", h.Login)
	api.POST("/auth/refresh", h.Refresh)

	users := api.Group("/users")
	users.POST("/register", h.Register)
	users.GET("", h.ListUsers, authenticated, admin)
	users.GET("/me", h.GetMe, authenticated)
	users.PATCH("/me", h.UpdateMe, authenticated)
	users.PATCH("/:id/change-role", h.ChangeRole, authenticated, superuser)
	users.GET("/statistics/active-users", h.ActiveUsers, authenticated, admin)

	authors := api.Group("/authors")
	authors.GET("", h.ListAuthors)
	authors.POST("/create", h.CreateAuthor, authenticated, admin)
	authors.PATCH("/update/:id", h.UpdateAuthor, authenticated, admin)
	authors.DELETE("/delete/:id", h.DeleteAuthor, authenticated, admin)

	genres := api.Group("/genres")
	genres.GET("", h.ListGenres)
	genres.POST("/create", h.CreateGenre, authenticated, admin)
	genres.DELETE("/delete/:id", h.DeleteGenre, authenticated, admin)

	books := api.Group("/books")
	books.GET("", h.ListBooks)
	books.GET("/:id", h.GetBook)
	books.POST("/create", h.CreateBook, authenticated, admin)
	books.PATCH("/update/:id", h.UpdateBook, authenticated, admin)
	books.DELETE("/delete/:id", h.DeleteBook, authenticated, admin)
	books.POST("/lend", h.LendBook, authenticated, admin)
	books.POST("/return-book/:loan_id", h.ReturnBook, authenticated)
	books.GET("/loans", h.ListMyLoans, authenticated)
	books.GET("/statistics/popular-books", h.PopularBooks)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
