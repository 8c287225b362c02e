package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"social-platform/configs"
	"social-platform/internal/comment"
	"social-platform/internal/kafka"
	"social-platform/internal/like"
	"social-platform/internal/media"
	"social-platform/internal/migrate"
	"social-platform/internal/post"
	"social-platform/internal/shared/db"
	"social-platform/internal/shared/httpx"
	"social-platform/internal/storage/s3"
	"social-platform/internal/user"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("social-platform"),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	cfg := configs.LoadConfig()

	// Postgres
	store := db.Open(cfg)
	if err := migrate.AutoMigrateAll(store); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Redis like-count cache; the service runs without it.
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed, like-count cache disabled: %v", err)
		rdb = nil
	}

	// S3 image bucket
	objStore, err := s3.New(s3.Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    false,
		Bucket:    cfg.S3BucketName,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		log.Fatalf("s3: %v", err)
	}
	if err := objStore.EnsureBucket(ctx); err != nil {
		log.Fatalf("s3 ensure bucket: %v", err)
	}

	// Kafka post events, enabled only when a broker is configured.
	var events post.EventWriter
	if cfg.KafkaBrokerURL != "" {
		w := kafka.NewWriter(cfg.KafkaBrokerURL, cfg.KafkaTopic)
		defer w.Close()
		events = w
	}

	userRepo := user.NewRepository(store)
	userSvc := user.NewService(userRepo)
	uh := user.NewHandler(userSvc)

	mediaSvc := media.NewService(objStore)

	postRepo := post.NewRepository(store)
	postSvc := post.NewService(postRepo, mediaSvc, events)
	ph := post.NewHandler(postSvc)

	likeRepo := like.NewRepository(store, rdb)
	likeSvc := like.NewService(likeRepo)
	lh := like.NewHandler(likeSvc)

	commentSvc := comment.NewService(comment.NewRepository(store), postRepo)
	ch := comment.NewHandler(commentSvc)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("POST /signup", httpx.Wrap(uh.Signup))
	mux.Handle("POST /login", httpx.Wrap(uh.Login))
	mux.Handle("GET /posts", httpx.Wrap(ph.List))
	mux.Handle("GET /posts/{post_id}", httpx.Wrap(ph.GetByID))
	mux.Handle("GET /posts/{post_id}/likes", httpx.Wrap(lh.GetCount))
	mux.Handle("GET /posts/{post_id}/comments", httpx.Wrap(ch.ListByPost))

	protect := func(pattern string, h http.Handler) {
		mux.Handle(pattern, httpx.AuthMiddleware(h))
	}
	protect("GET /me", httpx.Wrap(uh.Me))
	protect("POST /posts", httpx.Wrap(ph.Create))
	protect("POST /posts/{post_id}/like", httpx.Wrap(lh.Like))
	protect("DELETE /posts/{post_id}/like", httpx.Wrap(lh.Unlike))
	protect("POST /posts/{post_id}/comments", httpx.Wrap(ch.Create))

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("social-platform listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
