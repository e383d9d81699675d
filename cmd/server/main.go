package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/user/money-smart-kids/config"
	"github.com/user/money-smart-kids/internal/actions"
	"github.com/user/money-smart-kids/internal/content"
	"github.com/user/money-smart-kids/internal/game"
	"github.com/user/money-smart-kids/internal/interfaces"
	"github.com/user/money-smart-kids/internal/state"
	"github.com/user/money-smart-kids/internal/storage"
	"github.com/user/money-smart-kids/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Set up logger
	logger := setupLogger(cfg.Server.LogLevel)
	defer logger.Sync()

	// Load static content
	catalog, err := content.NewDataLoader(cfg.Content.DataDir).Load()
	if err != nil {
		logger.Fatal("Failed to load content catalogs", zap.Error(err))
	}
	logger.Info("Loaded content catalogs",
		zap.Int("avatars", len(catalog.Avatars)),
		zap.Int("slides", len(catalog.Slides)),
		zap.Int("questions", len(catalog.Questions)),
		zap.Int("budget_items", len(catalog.Items)),
		zap.Int("badges", len(catalog.Badges)),
		zap.Int("stores", len(catalog.Stores)))

	// Set up the persistent state slot
	stateStorage, closeStorage, err := setupStorage(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to set up state storage", zap.Error(err))
	}
	defer closeStorage()

	// Build the state store, restoring any prior save
	store := state.NewStore(initialState(cfg), stateStorage, logger)

	// Build the session layer on top of the store
	session := game.NewSession(store, catalog, cfg)
	session.SetLogger(logger)
	defer session.Timer().Stop()

	// Set up and start the HTTP server
	server := setupHTTPServer(cfg, store, session, catalog, logger)
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	waitForShutdown(server, logger)
}

func setupLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, _ := cfg.Build()
	return logger
}

// initialState builds the fresh-session state with the configured budget
// and countdown values.
func initialState(cfg config.Config) types.AppState {
	st := state.InitialState()
	st.Budget.Total = cfg.Game.AllowanceTotal
	st.Budget.Remaining = cfg.Game.AllowanceTotal
	st.Budget.Categories = types.CategoryTargets{
		Needs:   cfg.Game.NeedsTarget,
		Wants:   cfg.Game.WantsTarget,
		Savings: cfg.Game.SavingsTarget,
	}
	st.ShoppingGame.TimeLeft = cfg.Game.ShoppingTime
	return st
}

func setupStorage(cfg config.Config, logger *zap.Logger) (interfaces.StateStorage, func(), error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		ss, err := storage.NewSQLiteStorage(cfg.Storage.DSN, cfg.Storage.SlotKey, logger)
		if err != nil {
			return nil, nil, err
		}
		return ss, func() { ss.Close() }, nil
	case "", "file":
		return storage.NewFileStorage(cfg.Storage.Path, logger), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

func setupHTTPServer(cfg config.Config, store *state.Store, session *game.Session, catalog *content.Catalog, logger *zap.Logger) *http.Server {
	// Create router
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Set up routes
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Current state snapshot
	router.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, store.State())
	})

	// Generic action dispatch, the raw inbound interface of the core
	router.Post("/actions", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			respondError(w, http.StatusBadRequest, "failed to read request body")
			return
		}

		action, err := actions.Decode(body)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		respondJSON(w, http.StatusOK, store.Dispatch(action))
	})

	// Static content catalogs
	router.Route("/content", func(r chi.Router) {
		r.Get("/avatars", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, catalog.Avatars)
		})
		r.Get("/slides", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, catalog.Slides)
		})
		r.Get("/questions", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, catalog.Questions)
		})
		r.Get("/budget-items", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, catalog.Items)
		})
		r.Get("/badges", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, catalog.Badges)
		})
		r.Get("/stores", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, catalog.Stores)
		})
	})

	// Guided game flows
	router.Route("/session", func(r chi.Router) {
		r.Post("/avatar", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				AvatarID string `json:"avatar_id"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if err := session.ChooseAvatar(req.AvatarID); err != nil {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, store.State())
		})

		r.Post("/start", func(w http.ResponseWriter, r *http.Request) {
			if err := session.StartJourney(); err != nil {
				respondError(w, http.StatusConflict, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, store.State())
		})

		r.Post("/navigate", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Screen types.Screen `json:"screen"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if err := session.Navigate(req.Screen); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, store.State())
		})

		r.Post("/learning/next", func(w http.ResponseWriter, r *http.Request) {
			session.NextSlide()
			respondJSON(w, http.StatusOK, store.State())
		})
		r.Post("/learning/prev", func(w http.ResponseWriter, r *http.Request) {
			session.PrevSlide()
			respondJSON(w, http.StatusOK, store.State())
		})

		r.Post("/quiz/answer", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Option int `json:"option"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			answer, err := session.AnswerQuestion(req.Option)
			if err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, answer)
		})
		r.Post("/quiz/reset", func(w http.ResponseWriter, r *http.Request) {
			session.ResetQuiz()
			respondJSON(w, http.StatusOK, store.State())
		})

		r.Post("/budget/cart", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				ItemID string `json:"item_id"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if err := session.AddItem(req.ItemID); err != nil {
				status := http.StatusBadRequest
				if errors.Is(err, game.ErrItemNotFound) {
					status = http.StatusNotFound
				}
				respondError(w, status, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, store.State())
		})
		r.Delete("/budget/cart/{itemID}", func(w http.ResponseWriter, r *http.Request) {
			session.RemoveItem(chi.URLParam(r, "itemID"))
			respondJSON(w, http.StatusOK, store.State())
		})
		r.Post("/budget/reset", func(w http.ResponseWriter, r *http.Request) {
			session.ResetBudget()
			respondJSON(w, http.StatusOK, store.State())
		})
		r.Post("/budget/review", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, session.ReviewBudget())
		})

		r.Post("/shopping/enter", func(w http.ResponseWriter, r *http.Request) {
			session.EnterShoppingGame()
			respondJSON(w, http.StatusOK, store.State())
		})
		r.Post("/shopping/start", func(w http.ResponseWriter, r *http.Request) {
			session.StartGame()
			respondJSON(w, http.StatusOK, store.State())
		})
		r.Post("/shopping/end", func(w http.ResponseWriter, r *http.Request) {
			session.EndGame()
			respondJSON(w, http.StatusOK, store.State())
		})
		r.Post("/shopping/restart", func(w http.ResponseWriter, r *http.Request) {
			session.RestartGame()
			respondJSON(w, http.StatusOK, store.State())
		})
		r.Post("/shopping/move", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				CharacterID string `json:"character_id"`
				X           int    `json:"x"`
				Y           int    `json:"y"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if err := session.MoveTo(req.CharacterID, req.X, req.Y); err != nil {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, store.State())
		})
		r.Post("/shopping/buy", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				CharacterID string `json:"character_id"`
				StoreID     string `json:"store_id"`
				ItemID      string `json:"item_id"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			purchase, err := session.Buy(req.CharacterID, req.StoreID, req.ItemID)
			if err != nil {
				status := http.StatusBadRequest
				if errors.Is(err, game.ErrCharacterNotFound) ||
					errors.Is(err, game.ErrStoreNotFound) ||
					errors.Is(err, game.ErrItemNotFound) {
					status = http.StatusNotFound
				}
				respondError(w, status, err.Error())
				return
			}
			respondJSON(w, http.StatusOK, purchase)
		})
	})

	// Live state push for UI subscribers
	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveStateSocket(w, r, store, logger)
	})

	// Create HTTP server
	return &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func waitForShutdown(server *http.Server, logger *zap.Logger) {
	// Set up channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	// Stop accepting new requests and drain in-flight ones
	server.Close()
	logger.Info("Shutting down")
}
