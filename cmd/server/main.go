package main

import (
	"context"
	"log"
	"net/http"

	"blog/internal/app"
	"blog/internal/auth"
	"blog/internal/db"
	"blog/internal/graph"
	httpx "blog/internal/http"
	"blog/internal/images"
)

func main() {
	cfg := app.LoadConfig()
	ctx := context.Background()

	pool, err := db.Open(ctx, cfg.DatabaseURL)
	app.Must(err)
	app.Must(db.Migrate(ctx, pool, "schema.sql"))

	imgStore, err := images.NewStore(cfg.UploadDir)
	app.Must(err)

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenLifetime)
	todos := db.NewTodos(pool)
	resolver := &graph.Resolver{
		Users:    db.NewUsers(pool),
		Posts:    db.NewPosts(pool),
		TodoList: todos,
		Tokens:   issuer,
		Images:   imgStore,
	}
	schema := graph.NewSchema(resolver)

	srv := httpx.NewServer(schema, issuer, todos, imgStore)
	log.Printf("listening on %s", cfg.Addr)
	app.Must(http.ListenAndServe(cfg.Addr, srv))
}
