package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get("Content-Type")
		skipRequestBody := strings.Contains(contentType, "multipart/form-data")
		entry := AuditLogEntry{
			Timestamp:  time.Now(),
			Method:     r.Method,
			Path:       r.URL.Path,
			Handler:    getHandlerName(r.URL.Path, r.Method),
			ResourceID: extractResourceID(r.URL.Path),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.Username = username
		}
		if actor, ok := actorFrom(r.Context()); ok {
			entry.ActorID = actor.ID
			entry.ActorRole = actor.Role
		}

		var requestBody []byte
		if !skipRequestBody && r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

// extractResourceID pulls the id segment out of paths shaped like
// /orders/{id}, /deliveries/{id}/accept or /borrow/requests/{id}/start.
func extractResourceID(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		switch part {
		case "orders", "deliveries", "items":
			if i+1 < len(parts) {
				return parts[i+1]
			}
		case "requests":
			if i > 0 && parts[i-1] == "borrow" && i+1 < len(parts) {
				return parts[i+1]
			}
		}
	}
	return ""
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/items"):
		switch method {
		case "POST":
			return "handleCreateItem"
		case "DELETE":
			return "handleDeleteItem"
		default:
			return "handleListItems"
		}
	case strings.HasPrefix(path, "/orders"):
		switch {
		case method == "POST":
			return "handleCreateOrder"
		case strings.HasSuffix(path, "/confirm"):
			return "handleConfirmOrder"
		case strings.HasSuffix(path, "/cancel"):
			return "handleCancelOrder"
		default:
			return "handleGetOrder"
		}
	case strings.HasPrefix(path, "/deliveries"):
		switch {
		case strings.HasSuffix(path, "/open"):
			return "handleListOpenDeliveries"
		case strings.HasSuffix(path, "/accept"):
			return "handleAcceptDelivery"
		case strings.HasSuffix(path, "/status"):
			return "handleUpdateDeliveryStatus"
		}
	case strings.HasPrefix(path, "/borrow/requests"):
		switch {
		case method == "POST":
			return "handleRequestBorrow"
		case strings.HasSuffix(path, "/respond"):
			return "handleRespondBorrow"
		case strings.HasSuffix(path, "/start"):
			return "handleStartBorrow"
		case strings.HasSuffix(path, "/return"):
			return "handleReturnBorrow"
		case strings.HasSuffix(path, "/condition"):
			return "handleGetConditionRecord"
		}
	case strings.HasPrefix(path, "/my/"):
		switch strings.TrimPrefix(path, "/my/") {
		case "orders":
			return "handleListMyOrders"
		case "sales":
			return "handleListMySales"
		case "deliveries":
			return "handleListMyDeliveries"
		case "borrow-requests":
			return "handleListMyBorrowRequests"
		case "borrow-approvals":
			return "handleListSellerRequests"
		}
	}

	return "unknown"
}
