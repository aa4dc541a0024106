package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/grishma-roka/Campus-Cart/internal/storage"
)

const dateLayout = "2006-01-02"

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var req struct {
		Title             string `json:"title"`
		Price             int    `json:"price"`
		IsBorrowable      bool   `json:"is_borrowable"`
		BorrowPricePerDay int    `json:"borrow_price_per_day"`
		MaxBorrowDays     int    `json:"max_borrow_days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := s.storage.CreateItem(r.Context(), actor.ID, storage.ItemInput{
		Title:             req.Title,
		Price:             req.Price,
		IsBorrowable:      req.IsBorrowable,
		BorrowPricePerDay: req.BorrowPricePerDay,
		MaxBorrowDays:     req.MaxBorrowDays,
	})
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	if err := s.storage.DeleteItem(r.Context(), r.PathValue("id"), actor.ID); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.storage.ListItems(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var req struct {
		ItemID          string `json:"item_id"`
		Quantity        int    `json:"quantity"`
		DeliveryAddress string `json:"delivery_address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.storage.CreateOrder(r.Context(), actor.ID, storage.CreateOrderInput{
		ItemID:          req.ItemID,
		Quantity:        req.Quantity,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	order, err := s.storage.GetOrder(r.Context(), r.PathValue("id"), actor.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleListMyOrders(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	orders, err := s.storage.ListBuyerOrders(r.Context(), actor.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleListMySales(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	orders, err := s.storage.ListSellerOrders(r.Context(), actor.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleConfirmOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	if err := s.storage.ConfirmOrder(r.Context(), r.PathValue("id"), actor.ID); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order confirmed"})
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	if err := s.storage.CancelOrder(r.Context(), r.PathValue("id"), actor.ID); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order cancelled"})
}

func (s *Server) handleListOpenDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := s.storage.ListOpenDeliveries(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deliveries)
}

func (s *Server) handleListMyDeliveries(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	deliveries, err := s.storage.ListRiderDeliveries(r.Context(), actor.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deliveries)
}

func (s *Server) handleAcceptDelivery(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	if err := s.storage.AcceptDelivery(r.Context(), r.PathValue("id"), actor.ID); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Delivery accepted"})
}

func (s *Server) handleUpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.UpdateDeliveryStatus(r.Context(), r.PathValue("id"), actor.ID, req.Status); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Delivery status updated"})
}

func (s *Server) handleRequestBorrow(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var req struct {
		ItemID    string `json:"item_id"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid start_date: %v", err))
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid end_date: %v", err))
		return
	}

	request, err := s.storage.RequestBorrow(r.Context(), actor.ID, storage.BorrowRequestInput{
		ItemID:    req.ItemID,
		StartDate: start,
		EndDate:   end,
		Message:   req.Message,
	})
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, request)
}

func (s *Server) handleListMyBorrowRequests(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	requests, err := s.storage.ListBorrowerRequests(r.Context(), actor.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (s *Server) handleListSellerRequests(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	requests, err := s.storage.ListSellerRequests(r.Context(), actor.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (s *Server) handleRespondBorrow(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var req struct {
		Status     string `json:"status"`
		AdminNotes string `json:"admin_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.RespondBorrow(r.Context(), r.PathValue("id"), actor.ID, req.Status, req.AdminNotes); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Request " + req.Status})
}

func (s *Server) handleStartBorrow(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var req struct {
		ConditionBefore string   `json:"condition_before"`
		ImagesBefore    []string `json:"images_before"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.StartBorrow(r.Context(), r.PathValue("id"), actor.ID, req.ConditionBefore, req.ImagesBefore); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Borrow period started"})
}

func (s *Server) handleReturnBorrow(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	var req struct {
		ConditionAfter    string   `json:"condition_after"`
		ImagesAfter       []string `json:"images_after"`
		DamageReported    bool     `json:"damage_reported"`
		DamageDescription string   `json:"damage_description"`
		RefundAmount      int      `json:"refund_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.storage.ReturnBorrow(r.Context(), r.PathValue("id"), actor.ID, storage.ReturnBorrowInput{
		ConditionAfter:    req.ConditionAfter,
		ImagesAfter:       req.ImagesAfter,
		DamageReported:    req.DamageReported,
		DamageDescription: req.DamageDescription,
		RefundAmount:      req.RefundAmount,
	})
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Item returned"})
}

func (s *Server) handleGetConditionRecord(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())

	record, err := s.storage.GetConditionRecord(r.Context(), r.PathValue("id"), actor.ID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}
