package insightarc

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/insightarc/insightarc-server/internal/config"
	articleapproved "github.com/insightarc/insightarc-server/internal/http/handlers/article/approved"
	articlecreate "github.com/insightarc/insightarc-server/internal/http/handlers/article/create"
	articlelatest "github.com/insightarc/insightarc-server/internal/http/handlers/article/latest"
	articlemine "github.com/insightarc/insightarc-server/internal/http/handlers/article/mine"
	articlemoderate "github.com/insightarc/insightarc-server/internal/http/handlers/article/moderate"
	articlepremium "github.com/insightarc/insightarc-server/internal/http/handlers/article/premium"
	articleread "github.com/insightarc/insightarc-server/internal/http/handlers/article/read"
	articleremove "github.com/insightarc/insightarc-server/internal/http/handlers/article/remove"
	articlesearch "github.com/insightarc/insightarc-server/internal/http/handlers/article/search"
	articletrending "github.com/insightarc/insightarc-server/internal/http/handlers/article/trending"
	articleupdate "github.com/insightarc/insightarc-server/internal/http/handlers/article/update"
	articleview "github.com/insightarc/insightarc-server/internal/http/handlers/article/view"
	"github.com/insightarc/insightarc-server/internal/http/handlers/auth/login"
	"github.com/insightarc/insightarc-server/internal/http/handlers/auth/logout"
	"github.com/insightarc/insightarc-server/internal/http/handlers/health"
	publishercreate "github.com/insightarc/insightarc-server/internal/http/handlers/publisher/create"
	publisherlist "github.com/insightarc/insightarc-server/internal/http/handlers/publisher/list"
	subscriptionlist "github.com/insightarc/insightarc-server/internal/http/handlers/subscription/list"
	subscriptionpurchase "github.com/insightarc/insightarc-server/internal/http/handlers/subscription/purchase"
	subscriptionread "github.com/insightarc/insightarc-server/internal/http/handlers/subscription/read"
	userlist "github.com/insightarc/insightarc-server/internal/http/handlers/user/list"
	userlistother "github.com/insightarc/insightarc-server/internal/http/handlers/user/listother"
	userread "github.com/insightarc/insightarc-server/internal/http/handlers/user/read"
	userroleread "github.com/insightarc/insightarc-server/internal/http/handlers/user/roleread"
	userroleupdate "github.com/insightarc/insightarc-server/internal/http/handlers/user/roleupdate"
	userstats "github.com/insightarc/insightarc-server/internal/http/handlers/user/stats"
	userupsert "github.com/insightarc/insightarc-server/internal/http/handlers/user/upsert"
	"github.com/insightarc/insightarc-server/internal/http/middlewarectx"
	"github.com/insightarc/insightarc-server/internal/lib/jwt"
	articleservice "github.com/insightarc/insightarc-server/internal/services/article"
	publisherservice "github.com/insightarc/insightarc-server/internal/services/publisher"
	subscriptionservice "github.com/insightarc/insightarc-server/internal/services/subscription"
	userservice "github.com/insightarc/insightarc-server/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, tokenMaker jwt.Maker,
	userService *userservice.Service, articleService *articleservice.Service,
	publisherService *publisherservice.Service, subscriptionService *subscriptionservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	// Клиент ходит с cookie, поэтому AllowCredentials и явный список origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Открытые конечные точки
	r.Get("/", health.New().ServeHTTP)
	r.Post("/jwt", login.New(logger, tokenMaker, cfg.TokenTTL, cfg.IsProd()).ServeHTTP)
	r.Get("/logout", logout.New(logger, cfg.IsProd()).ServeHTTP)

	r.Get("/all-users", userlist.New(logger, userService).ServeHTTP)
	r.Get("/users-stat", userstats.New(logger, userService).ServeHTTP)
	r.Get("/users/{email}", userread.New(logger, userService).ServeHTTP)
	r.Post("/users/{email}", userupsert.New(logger, userService).ServeHTTP)

	r.Post("/publishers", publishercreate.New(logger, publisherService).ServeHTTP)
	r.Get("/publishers", publisherlist.New(logger, publisherService).ServeHTTP)

	r.Get("/articles", articlesearch.New(logger, articleService).ServeHTTP)
	r.Get("/latest-articles", articlelatest.New(logger, articleService).ServeHTTP)
	r.Get("/approved-articles", articleapproved.New(logger, articleService).ServeHTTP)
	r.Get("/trending-articles", articletrending.New(logger, articleService).ServeHTTP)
	r.Get("/articles/{id}", articleread.New(logger, articleService).ServeHTTP)
	// Просмотры считаются и для анонимных читателей
	r.Patch("/articles/{id}/view", articleview.New(logger, articleService).ServeHTTP)

	r.Get("/subscriptions", subscriptionlist.New(logger, subscriptionService).ServeHTTP)
	r.Get("/subscriptions/{id}", subscriptionread.New(logger, subscriptionService).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.AuthMiddleware(tokenMaker, logger))

		r.Get("/all-users/{email}", userlistother.New(logger, userService).ServeHTTP)
		r.Patch("/users/role/{email}", userroleupdate.New(logger, userService).ServeHTTP)
		r.Get("/users/role/{email}", userroleread.New(logger, userService).ServeHTTP)

		r.Get("/my-articles/{email}", articlemine.New(logger, articleService).ServeHTTP)
		r.Get("/premium-articles", articlepremium.New(logger, articleService).ServeHTTP)
		r.Post("/articles", articlecreate.New(logger, articleService).ServeHTTP)
		r.Patch("/articles/{id}", articlemoderate.New(logger, articleService).ServeHTTP)
		r.Put("/articles/{id}", articleupdate.New(logger, articleService).ServeHTTP)
		r.Delete("/articles/{id}", articleremove.New(logger, articleService).ServeHTTP)

		r.Post("/update-subscription", subscriptionpurchase.New(logger, userService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
