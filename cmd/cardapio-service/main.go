package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/costeladotiti/cardapio/pkg/logging"
	"github.com/costeladotiti/cardapio/pkg/shutdown"
	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"

	cartapp "github.com/costeladotiti/cardapio/internal/cart/application"
	cartmem "github.com/costeladotiti/cardapio/internal/cart/infrastructure/memory"
	cartredis "github.com/costeladotiti/cardapio/internal/cart/infrastructure/redis"
	checkoutapp "github.com/costeladotiti/cardapio/internal/checkout/application"
	checkouthttp "github.com/costeladotiti/cardapio/internal/checkout/infrastructure/http"
	"github.com/costeladotiti/cardapio/internal/checkout/infrastructure/whatsapp"
	menuapp "github.com/costeladotiti/cardapio/internal/menu/application"
	menuhttp "github.com/costeladotiti/cardapio/internal/menu/infrastructure/http"

	carthttp "github.com/costeladotiti/cardapio/internal/cart/infrastructure/http"
)

func main() {
	log := logging.New()

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Configuration. REDIS_ADDR is read verbatim: unset or empty means
	// the cart lives in memory only.
	httpAddr := env("HTTP_ADDR", ":8080")
	redisAddr := os.Getenv("REDIS_ADDR")
	cartKey := env("CART_KEY", "costela-titi-cart")

	// Catalog
	catalog := menuapp.NewService()
	restaurant := catalog.Restaurant()

	snapshots, closeSnapshots := newSnapshots(log, redisAddr)
	defer closeSnapshots()

	cart := cartapp.NewService(log, snapshots, cartKey, catalog.Additionals())
	checkout := checkoutapp.NewService(log, cart, catalog.Additionals(), restaurant.Name, restaurant.WhatsAppNumber, whatsapp.Builder{})

	// Restore the cart in the background; mutations before it finishes
	// stay in memory and are not persisted.
	go cart.Load(ctx)

	r := chi.NewRouter()
	r.Mount("/menu", menuhttp.NewHandler(log, catalog).Routes())
	r.Mount("/cart", carthttp.NewHandler(log, cart, catalog).Routes())
	r.Mount("/checkout", checkouthttp.NewHandler(log, checkout).Routes())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", httpAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	if err := shutdown.Drain(srv, 10*time.Second); err != nil {
		log.Error("shutdown error", "err", err)
	}
	log.Info("cardapio-service shutdown complete")
}

// newSnapshots picks the cart snapshot store: redis when an address is
// configured, in-memory otherwise. The returned func releases the store.
func newSnapshots(log *slog.Logger, redisAddr string) (cartapp.Snapshots, func()) {
	if redisAddr == "" {
		log.Warn("REDIS_ADDR empty, cart will not survive restarts")
		return cartmem.New(), func() {}
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: redisAddr})
	return cartredis.NewSnapshots(rdb), func() { _ = rdb.Close() }
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
