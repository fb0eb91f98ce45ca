package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/mwolczyk/BudgetManager/internal/auth"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/application"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/infrastructure"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/interfaces"
	database "github.com/mwolczyk/BudgetManager/internal/db"
	"github.com/mwolczyk/BudgetManager/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request completed")
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router                 http.Handler
	authHandler            *auth.Handler
	authService            auth.Service
	userHandler            *user.Handler
	accountHandler         *interfaces.AccountHandler
	accountTypeHandler     *interfaces.AccountTypeHandler
	transactionTypeHandler *interfaces.TransactionTypeHandler
	categoryHandler        *interfaces.CategoryHandler
	transactionHandler     *interfaces.TransactionHandler
	linkHandler            *interfaces.CategoryLinkHandler
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	accountHandler *interfaces.AccountHandler,
	accountTypeHandler *interfaces.AccountTypeHandler,
	transactionTypeHandler *interfaces.TransactionTypeHandler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
	linkHandler *interfaces.CategoryLinkHandler,
) *Server {
	return &Server{
		router:                 http.NewServeMux(),
		authHandler:            authHandler,
		authService:            authService,
		userHandler:            userHandler,
		accountHandler:         accountHandler,
		accountTypeHandler:     accountTypeHandler,
		transactionTypeHandler: transactionTypeHandler,
		categoryHandler:        categoryHandler,
		transactionHandler:     transactionHandler,
		linkHandler:            linkHandler,
	}
}

// jsonMuxErrors rewrites the router's own plain-text 404 and 405 replies into
// the API's JSON shape. The mux keeps deciding the status, so a known path hit
// with the wrong verb still answers 405 with its Allow header. Handler-written
// errors are already JSON and pass through untouched.
func jsonMuxErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&muxErrorWriter{ResponseWriter: w}, r)
	})
}

type muxErrorWriter struct {
	http.ResponseWriter
	handled bool
}

func (w *muxErrorWriter) WriteHeader(status int) {
	isMuxError := status == http.StatusNotFound || status == http.StatusMethodNotAllowed
	if isMuxError && !strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		w.handled = true
		message := "Path not found"
		if status == http.StatusMethodNotAllowed {
			message = "Method not allowed"
		}
		w.Header().Set("Content-Type", "application/json")
		w.ResponseWriter.WriteHeader(status)
		json.NewEncoder(w.ResponseWriter).Encode(Response{Message: message})
		return
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *muxErrorWriter) Write(b []byte) (int, error) {
	if w.handled {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Info("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	mainRouter := http.NewServeMux()
	protect := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	mainRouter.Handle("POST /api/users/create", http.HandlerFunc(s.userHandler.HandleRegister))
	mainRouter.Handle("POST /api/users/token", http.HandlerFunc(s.authHandler.HandleObtainToken))
	mainRouter.Handle("POST /api/users/token/refresh", http.HandlerFunc(s.authHandler.HandleRefreshToken))
	mainRouter.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Profile
	mainRouter.Handle("GET /api/users/me", protect(http.HandlerFunc(s.userHandler.HandleGetMe)))
	mainRouter.Handle("PATCH /api/users/me", protect(http.HandlerFunc(s.userHandler.HandleUpdateMe)))

	// Accounts
	mainRouter.Handle("POST /api/accounts", protect(http.HandlerFunc(s.accountHandler.CreateAccount)))
	mainRouter.Handle("GET /api/accounts", protect(http.HandlerFunc(s.accountHandler.GetAccounts)))
	mainRouter.Handle("GET /api/accounts/{accountID}", protect(http.HandlerFunc(s.accountHandler.GetAccount)))
	mainRouter.Handle("PATCH /api/accounts/{accountID}", protect(http.HandlerFunc(s.accountHandler.UpdateAccount)))
	mainRouter.Handle("DELETE /api/accounts/{accountID}", protect(http.HandlerFunc(s.accountHandler.DeleteAccount)))

	// Account types
	mainRouter.Handle("POST /api/account-types", protect(http.HandlerFunc(s.accountTypeHandler.CreateAccountType)))
	mainRouter.Handle("GET /api/account-types", protect(http.HandlerFunc(s.accountTypeHandler.GetAccountTypes)))
	mainRouter.Handle("GET /api/account-types/{accountTypeID}", protect(http.HandlerFunc(s.accountTypeHandler.GetAccountType)))
	mainRouter.Handle("PATCH /api/account-types/{accountTypeID}", protect(http.HandlerFunc(s.accountTypeHandler.UpdateAccountType)))
	mainRouter.Handle("DELETE /api/account-types/{accountTypeID}", protect(http.HandlerFunc(s.accountTypeHandler.DeleteAccountType)))

	// Transaction types
	mainRouter.Handle("POST /api/transaction-types", protect(http.HandlerFunc(s.transactionTypeHandler.CreateTransactionType)))
	mainRouter.Handle("GET /api/transaction-types", protect(http.HandlerFunc(s.transactionTypeHandler.GetTransactionTypes)))
	mainRouter.Handle("GET /api/transaction-types/{transactionTypeID}", protect(http.HandlerFunc(s.transactionTypeHandler.GetTransactionType)))
	mainRouter.Handle("PATCH /api/transaction-types/{transactionTypeID}", protect(http.HandlerFunc(s.transactionTypeHandler.UpdateTransactionType)))
	mainRouter.Handle("DELETE /api/transaction-types/{transactionTypeID}", protect(http.HandlerFunc(s.transactionTypeHandler.DeleteTransactionType)))

	// Categories
	mainRouter.Handle("POST /api/categories", protect(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	mainRouter.Handle("GET /api/categories", protect(http.HandlerFunc(s.categoryHandler.GetCategories)))
	mainRouter.Handle("GET /api/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.GetCategory)))
	mainRouter.Handle("PATCH /api/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	mainRouter.Handle("DELETE /api/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// Transactions
	mainRouter.Handle("POST /api/transactions", protect(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	mainRouter.Handle("GET /api/transactions", protect(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	mainRouter.Handle("GET /api/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	mainRouter.Handle("PATCH /api/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	mainRouter.Handle("DELETE /api/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// Category links
	mainRouter.Handle("POST /api/category-links", protect(http.HandlerFunc(s.linkHandler.CreateLink)))
	mainRouter.Handle("GET /api/category-links", protect(http.HandlerFunc(s.linkHandler.GetLinks)))
	mainRouter.Handle("GET /api/category-links/{linkID}", protect(http.HandlerFunc(s.linkHandler.GetLink)))
	mainRouter.Handle("DELETE /api/category-links/{linkID}", protect(http.HandlerFunc(s.linkHandler.DeleteLink)))

	s.router = jsonMuxErrors(mainRouter)
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)

	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	accountRepo := infrastructure.NewAccountRepository(dbService.DB)
	accountTypeRepo := infrastructure.NewAccountTypeRepository(dbService.DB)
	transactionTypeRepo := infrastructure.NewTransactionTypeRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	linkRepo := infrastructure.NewCategoryLinkRepository(dbService.DB)

	accountService := application.NewAccountService(accountRepo, accountTypeRepo)
	accountTypeService := application.NewAccountTypeService(accountTypeRepo)
	transactionTypeService := application.NewTransactionTypeService(transactionTypeRepo)
	categoryService := application.NewCategoryService(categoryRepo)
	transactionService := application.NewTransactionService(transactionRepo, transactionTypeRepo, categoryRepo, accountRepo)
	linkService := application.NewCategoryLinkService(linkRepo, categoryRepo, transactionTypeRepo)

	accountHandler := interfaces.NewAccountHandler(accountService, respondJSON, respondError)
	accountTypeHandler := interfaces.NewAccountTypeHandler(accountTypeService, respondJSON, respondError)
	transactionTypeHandler := interfaces.NewTransactionTypeHandler(transactionTypeService, respondJSON, respondError)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	linkHandler := interfaces.NewCategoryLinkHandler(linkService, respondJSON, respondError)

	server := NewServer(
		authHandler,
		authService,
		userHandler,
		accountHandler,
		accountTypeHandler,
		transactionTypeHandler,
		categoryHandler,
		transactionHandler,
		linkHandler,
	)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("starting server")
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
