package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"tablecoach-go/profiles"
	"tablecoach-go/session"
	"tablecoach-go/trainer"
)

const sessionMaxIdle = 2 * time.Hour

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	go startHealthServer()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := profiles.Setup(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Profile store setup failed: %v", err)
	}
	defer store.Close()

	sessions := session.NewManager()
	front := trainer.New(sessions, store)

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			sessions.CleanupExpired(sessionMaxIdle)
		}
	}()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Println("BOT_TOKEN not set - Discord bot will not connect")
		// Keep the health server running for the platform
		select {}
	}

	bot, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	bot.Identify.Intents = discordgo.IntentsGuilds

	bot.AddHandler(func(s *discordgo.Session, event *discordgo.Ready) {
		log.Printf("Logged in as %s (ID: %s)", event.User.Username, event.User.ID)
		if err := registerCommands(s, front); err != nil {
			log.Printf("Failed to register slash commands: %v", err)
		}
	})
	bot.AddHandler(front.HandleInteraction)

	if err := bot.Open(); err != nil {
		log.Fatalf("Failed to open Discord connection: %v", err)
	}
	defer bot.Close()

	log.Println("Trainer is running. Press CTRL+C to exit.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Gracefully shutting down...")
}

func registerCommands(s *discordgo.Session, front *trainer.Trainer) error {
	commands := front.Commands()
	for _, command := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, "", command); err != nil {
			return fmt.Errorf("failed to create command %s: %w", command.Name, err)
		}
	}
	log.Printf("Successfully registered %d slash commands", len(commands))
	return nil
}

func startHealthServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "tablecoach")
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	log.Printf("Health server listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Printf("Health server stopped: %v", err)
	}
}
