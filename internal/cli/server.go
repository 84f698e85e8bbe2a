package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/app"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/config"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/courses"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/infra/memory"
	pgstore "github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/infra/postgres"
	redisinfra "github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/infra/redis"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/llm"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/mentor"
	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/quiz"
	transport "github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the tutor server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	// Persistence: Postgres when configured, in-memory demo mode otherwise.
	var store app.Store = memory.NewStore()
	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		store = pgstore.NewStore(pool)
	}

	// Generative service: a missing API key leaves the client nil and
	// every component on its deterministic fallback path.
	var client llm.Client
	if cfg.OpenAI.APIKey != "" {
		openaiClient, err := llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		})
		if err != nil {
			return err
		}
		client = llm.WithRetry(openaiClient, config.TTLDuration(cfg.OpenAI.RetryWait, time.Second))
	} else {
		log.Printf("no OpenAI key configured; quiz, course, and chat generation run on fallbacks")
	}

	quizTimeout := config.TTLDuration(cfg.OpenAI.QuizTimeout, 20*time.Second)
	courseTimeout := config.TTLDuration(cfg.OpenAI.CourseTimeout, 25*time.Second)
	chatTimeout := config.TTLDuration(cfg.OpenAI.ChatTimeout, 25*time.Second)

	recommender := courses.NewRecommender(client, courseTimeout)
	cacheTTL := config.TTLDuration(cfg.Courses.CacheTTL, 30*time.Minute)

	var recSource app.RecommendationSource
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		recSource = redisinfra.NewRecommendationCache(redisClient, recommender, cacheTTL)
	} else {
		recSource = memory.NewRecommendationCache(recommender, cacheTTL)
	}

	authService := app.NewAuthService(store)
	quizService := app.NewQuizService(store, quiz.NewGenerator(client, quizTimeout))
	courseService := app.NewCourseService(store, recSource)
	mentorService := app.NewMentorService(store, mentor.NewResponder(client, chatTimeout))
	scheduleService := app.NewScheduleService(store)

	api := transport.NewAPI(authService, quizService, courseService, mentorService, scheduleService)
	chatWS := transport.NewChatWSHandler(mentorService)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	api.Register(mux)
	mux.HandleFunc("/ws/chat", chatWS.ServeWS)

	server := &http.Server{
		Addr:        ":" + finalPort,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// Chat and generation calls may legitimately take ~25s upstream.
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("starting skillsphere server on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
