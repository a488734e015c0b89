package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/NazirHussain1/inkwell-backend/configs"
	"github.com/NazirHussain1/inkwell-backend/internal/handlers"
	"github.com/NazirHussain1/inkwell-backend/internal/middleware"
	"github.com/NazirHussain1/inkwell-backend/internal/repository"
	"github.com/NazirHussain1/inkwell-backend/internal/validator"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	DB  *mongo.Database
	Cfg *configs.Config
	Log *slog.Logger
}

// Register mounts all HTTP routes in one place.
// Keep paths lowercase, grouped by resource, and easy to discover.
func Register(app *fiber.App, d Deps) {
	v := validator.New()
	dev := d.Cfg.Development()

	users := repository.NewUserRepository(d.DB)
	posts := repository.NewPostRepository(d.DB)
	comments := repository.NewCommentRepository(d.DB)
	reactions := repository.NewReactionRepository(d.DB)
	follows := repository.NewFollowRepository(d.DB)
	trending := repository.NewTrendingRepository(d.DB)
	categories := repository.NewCategoryRepository(d.DB)

	authH := &handlers.AuthHandler{Users: users, JWTSecret: d.Cfg.JWTSecret, Validate: v, Log: d.Log, Dev: dev}
	postH := &handlers.PostHandler{Posts: posts, Comments: comments, Validate: v, Log: d.Log, Dev: dev}
	commentH := &handlers.CommentHandler{Posts: posts, Comments: comments, Validate: v, Log: d.Log, Dev: dev}
	reactionH := &handlers.ReactionHandler{Posts: posts, Reactions: reactions, Log: d.Log, Dev: dev}
	feedH := &handlers.FeedHandler{Posts: posts, Log: d.Log, Dev: dev}
	trendingH := &handlers.TrendingHandler{Trending: trending, Log: d.Log, Dev: dev}
	categoryH := &handlers.CategoryHandler{Categories: categories, PostStore: posts, Log: d.Log, Dev: dev}
	followH := &handlers.FollowHandler{Follows: follows, Users: users, Log: d.Log, Dev: dev}

	api := app.Group("/api")

	// ============================================================
	// Auth
	// ============================================================
	authGrp := api.Group("/auth")
	authGrp.Post("/signup", authH.Signup)
	authGrp.Post("/login", authH.Login)
	authGrp.Post("/logout", authH.Logout)

	api.Get("/whoami", handlers.Whoami)

	// ============================================================
	// Posts
	// ============================================================
	postsGrp := api.Group("/posts")

	// Feed before the :slug wildcard so "feed" is not taken as a slug.
	postsGrp.Get("/feed", feedH.List)

	postsGrp.Post("/", middleware.RequireAuth(), postH.Create)
	postsGrp.Get("/:slug", postH.Get)
	postsGrp.Put("/:slug", middleware.RequireAuth(), postH.Update)
	postsGrp.Delete("/:slug", middleware.RequireAuth(), postH.Delete)

	// Reactions: POST on the post itself sets/switches/clears.
	postsGrp.Post("/:slug", middleware.RequireAuth(), reactionH.Set)

	// Comments
	postsGrp.Get("/:slug/comments", commentH.List)
	postsGrp.Post("/:slug/comments", middleware.RequireAuth(), commentH.Create)
	postsGrp.Put("/:slug/comments", middleware.RequireAuth(), commentH.ToggleLike)

	// ============================================================
	// Users / social
	// ============================================================
	usersGrp := api.Group("/users")
	usersGrp.Put("/:id/follow", middleware.RequireAuth(), followH.Toggle)
	usersGrp.Get("/:id/followers", followH.Followers)
	usersGrp.Get("/:id/following", followH.Following)

	// ============================================================
	// Discovery
	// ============================================================
	api.Get("/trending/hashtags", trendingH.Hashtags)
	api.Get("/categories", categoryH.List)
	api.Get("/categories/:slug/posts", categoryH.Posts)

	// Health check
	// GET /api/healthz → "ok"
	api.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
