//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/grishma-roka/Campus-Cart/internal/storage"
)

type Storage interface {
	CreateItem(ctx context.Context, sellerID string, in storage.ItemInput) (*storage.Item, error)
	DeleteItem(ctx context.Context, itemID, sellerID string) error
	ListItems(ctx context.Context) ([]storage.Item, error)

	CreateOrder(ctx context.Context, buyerID string, in storage.CreateOrderInput) (*storage.Order, error)
	GetOrder(ctx context.Context, orderID, callerID string) (*storage.Order, error)
	ListBuyerOrders(ctx context.Context, buyerID string) ([]storage.Order, error)
	ListSellerOrders(ctx context.Context, sellerID string) ([]storage.Order, error)
	ConfirmOrder(ctx context.Context, orderID, sellerID string) error
	CancelOrder(ctx context.Context, orderID, callerID string) error

	ListOpenDeliveries(ctx context.Context) ([]storage.Delivery, error)
	ListRiderDeliveries(ctx context.Context, riderID string) ([]storage.Delivery, error)
	AcceptDelivery(ctx context.Context, deliveryID, riderID string) error
	UpdateDeliveryStatus(ctx context.Context, deliveryID, riderID, status string) error

	RequestBorrow(ctx context.Context, borrowerID string, in storage.BorrowRequestInput) (*storage.BorrowRequest, error)
	ListBorrowerRequests(ctx context.Context, borrowerID string) ([]storage.BorrowRequest, error)
	ListSellerRequests(ctx context.Context, sellerID string) ([]storage.BorrowRequest, error)
	RespondBorrow(ctx context.Context, requestID, sellerID, status, adminNotes string) error
	StartBorrow(ctx context.Context, requestID, sellerID, conditionBefore string, imagesBefore []string) error
	ReturnBorrow(ctx context.Context, requestID, sellerID string, in storage.ReturnBorrowInput) error
	GetConditionRecord(ctx context.Context, requestID, callerID string) (*storage.ItemCondition, error)
}

type UserRepo interface {
	Authenticate(ctx context.Context, username, password string) (*storage.Actor, error)
}

type Server struct {
	storage      Storage
	userRepo     UserRepo
	server       *http.Server
	AuditManager *AuditManager
}

func New(storage Storage, userRepo UserRepo, auditManager *AuditManager) *Server {
	if auditManager == nil {
		auditManager = NewAuditManager(2, 5, 500*time.Millisecond, nil)
	}
	return &Server{
		storage:      storage,
		userRepo:     userRepo,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	go s.handleShutdown()

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleShutdown() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	log.Printf("Received signal %v, initiating graceful shutdown...", sig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Printf("ERROR: Server shutdown failed: %v", err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	log.Println("Server shutdown completed successfully")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	handler := s.authMiddleware(s.auditLogMiddleware(mux))

	mux.HandleFunc("POST /items", s.requireRole(storage.RoleSeller, s.handleCreateItem))
	mux.HandleFunc("DELETE /items/{id}", s.requireRole(storage.RoleSeller, s.handleDeleteItem))
	mux.HandleFunc("GET /items", s.handleListItems)

	mux.HandleFunc("POST /orders", s.requireRole(storage.RoleBuyer, s.handleCreateOrder))
	mux.HandleFunc("GET /orders/{id}", s.handleGetOrder)
	mux.HandleFunc("PUT /orders/{id}/confirm", s.requireRole(storage.RoleSeller, s.handleConfirmOrder))
	mux.HandleFunc("PUT /orders/{id}/cancel", s.handleCancelOrder)
	mux.HandleFunc("GET /my/orders", s.requireRole(storage.RoleBuyer, s.handleListMyOrders))
	mux.HandleFunc("GET /my/sales", s.requireRole(storage.RoleSeller, s.handleListMySales))

	mux.HandleFunc("GET /deliveries/open", s.requireRole(storage.RoleRider, s.handleListOpenDeliveries))
	mux.HandleFunc("PUT /deliveries/{id}/accept", s.requireRole(storage.RoleRider, s.handleAcceptDelivery))
	mux.HandleFunc("PUT /deliveries/{id}/status", s.requireRole(storage.RoleRider, s.handleUpdateDeliveryStatus))
	mux.HandleFunc("GET /my/deliveries", s.requireRole(storage.RoleRider, s.handleListMyDeliveries))

	mux.HandleFunc("POST /borrow/requests", s.requireRole(storage.RoleBuyer, s.handleRequestBorrow))
	mux.HandleFunc("GET /my/borrow-requests", s.requireRole(storage.RoleBuyer, s.handleListMyBorrowRequests))
	mux.HandleFunc("GET /my/borrow-approvals", s.requireRole(storage.RoleSeller, s.handleListSellerRequests))
	mux.HandleFunc("PUT /borrow/requests/{id}/respond", s.requireRole(storage.RoleSeller, s.handleRespondBorrow))
	mux.HandleFunc("PUT /borrow/requests/{id}/start", s.requireRole(storage.RoleSeller, s.handleStartBorrow))
	mux.HandleFunc("PUT /borrow/requests/{id}/return", s.requireRole(storage.RoleSeller, s.handleReturnBorrow))
	mux.HandleFunc("GET /borrow/requests/{id}/condition", s.handleGetConditionRecord)

	mux.Handle("GET /metrics", promhttp.Handler())

	return handler
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		actor, err := s.userRepo.Authenticate(r.Context(), username, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
	})
}

// requireRole declares the role gate for an operation at its boundary.
// Admins pass every gate.
func (s *Server) requireRole(role string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if actor.Role != role && actor.Role != storage.RoleAdmin {
			respondError(w, http.StatusForbidden, "Forbidden: requires "+role+" role")
			return
		}
		handler(w, r)
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStorageError maps the lifecycle error taxonomy onto HTTP codes.
func respondStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrConflict):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
