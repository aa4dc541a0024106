package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_server "github.com/grishma-roka/Campus-Cart/internal/server/mocks"
	"github.com/grishma-roka/Campus-Cart/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *mock_server.MockStorage, *mock_server.MockUserRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStorage := mock_server.NewMockStorage(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	return New(mockStorage, mockUserRepo, nil), mockStorage, mockUserRepo
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body interface{}, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.SetBasicAuth(username, password)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func expectAuth(mockUserRepo *mock_server.MockUserRepo, actor storage.Actor) {
	mockUserRepo.EXPECT().
		Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&actor, nil)
}

func TestHandleCreateOrder(t *testing.T) {
	server, mockStorage, mockUserRepo := newTestServer(t)
	handler := server.setupRoutes()

	buyer := storage.Actor{ID: "buyer-1", Role: storage.RoleBuyer}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful order creation",
			requestBody: map[string]interface{}{
				"item_id":          "item-1",
				"quantity":         2,
				"delivery_address": "Dorm 14, Room 220",
			},
			setupMocks: func() {
				expectAuth(mockUserRepo, buyer)
				mockStorage.EXPECT().
					CreateOrder(gomock.Any(), "buyer-1", storage.CreateOrderInput{
						ItemID:          "item-1",
						Quantity:        2,
						DeliveryAddress: "Dorm 14, Room 220",
					}).
					Return(&storage.Order{ID: "order-1", Status: "pending"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "missing item",
			requestBody: map[string]interface{}{"item_id": "nope", "delivery_address": "x"},
			setupMocks: func() {
				expectAuth(mockUserRepo, buyer)
				mockStorage.EXPECT().
					CreateOrder(gomock.Any(), "buyer-1", gomock.Any()).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "storage failure",
			requestBody: map[string]interface{}{"item_id": "item-1", "delivery_address": "x"},
			setupMocks: func() {
				expectAuth(mockUserRepo, buyer)
				mockStorage.EXPECT().
					CreateOrder(gomock.Any(), "buyer-1", gomock.Any()).
					Return(nil, errors.New("db is down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			rec := doRequest(t, handler, http.MethodPost, "/orders", tt.requestBody, "buyer", "secret")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	server, _, mockUserRepo := newTestServer(t)
	handler := server.setupRoutes()

	t.Run("missing credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Authenticate(gomock.Any(), "intruder", "guess").
			Return(nil, errors.New("unknown user"))

		rec := doRequest(t, handler, http.MethodGet, "/items", nil, "intruder", "guess")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRoleEnforcement(t *testing.T) {
	server, mockStorage, mockUserRepo := newTestServer(t)
	handler := server.setupRoutes()

	t.Run("rider cannot create orders", func(t *testing.T) {
		expectAuth(mockUserRepo, storage.Actor{ID: "rider-1", Role: storage.RoleRider})

		rec := doRequest(t, handler, http.MethodPost, "/orders",
			map[string]interface{}{"item_id": "item-1"}, "rider", "secret")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes every gate", func(t *testing.T) {
		expectAuth(mockUserRepo, storage.Actor{ID: "admin-1", Role: storage.RoleAdmin})
		mockStorage.EXPECT().
			ListOpenDeliveries(gomock.Any()).
			Return([]storage.Delivery{}, nil)

		rec := doRequest(t, handler, http.MethodGet, "/deliveries/open", nil, "admin", "secret")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleAcceptDelivery(t *testing.T) {
	server, mockStorage, mockUserRepo := newTestServer(t)
	handler := server.setupRoutes()

	rider := storage.Actor{ID: "rider-1", Role: storage.RoleRider}

	tests := []struct {
		name           string
		storageErr     error
		expectedStatus int
	}{
		{
			name:           "claim won",
			storageErr:     nil,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "claim lost to another rider",
			storageErr:     storage.ErrConflict,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "delivery does not exist",
			storageErr:     storage.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectAuth(mockUserRepo, rider)
			mockStorage.EXPECT().
				AcceptDelivery(gomock.Any(), "dl-1", "rider-1").
				Return(tt.storageErr)

			rec := doRequest(t, handler, http.MethodPut, "/deliveries/dl-1/accept", nil, "rider", "secret")
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleUpdateDeliveryStatus(t *testing.T) {
	server, mockStorage, mockUserRepo := newTestServer(t)
	handler := server.setupRoutes()

	rider := storage.Actor{ID: "rider-1", Role: storage.RoleRider}

	t.Run("picked up", func(t *testing.T) {
		expectAuth(mockUserRepo, rider)
		mockStorage.EXPECT().
			UpdateDeliveryStatus(gomock.Any(), "dl-1", "rider-1", "picked_up").
			Return(nil)

		rec := doRequest(t, handler, http.MethodPut, "/deliveries/dl-1/status",
			map[string]interface{}{"status": "picked_up"}, "rider", "secret")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong rider", func(t *testing.T) {
		expectAuth(mockUserRepo, rider)
		mockStorage.EXPECT().
			UpdateDeliveryStatus(gomock.Any(), "dl-1", "rider-1", "delivered").
			Return(storage.ErrForbidden)

		rec := doRequest(t, handler, http.MethodPut, "/deliveries/dl-1/status",
			map[string]interface{}{"status": "delivered"}, "rider", "secret")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandleRequestBorrow(t *testing.T) {
	server, mockStorage, mockUserRepo := newTestServer(t)
	handler := server.setupRoutes()

	buyer := storage.Actor{ID: "buyer-1", Role: storage.RoleBuyer}

	t.Run("valid request", func(t *testing.T) {
		expectAuth(mockUserRepo, buyer)

		start, _ := time.Parse(dateLayout, "2024-03-01")
		end, _ := time.Parse(dateLayout, "2024-03-04")
		mockStorage.EXPECT().
			RequestBorrow(gomock.Any(), "buyer-1", storage.BorrowRequestInput{
				ItemID:    "item-1",
				StartDate: start,
				EndDate:   end,
				Message:   "need it for a lab",
			}).
			Return(&storage.BorrowRequest{ID: "br-1", Status: "pending"}, nil)

		rec := doRequest(t, handler, http.MethodPost, "/borrow/requests", map[string]interface{}{
			"item_id":    "item-1",
			"start_date": "2024-03-01",
			"end_date":   "2024-03-04",
			"message":    "need it for a lab",
		}, "buyer", "secret")

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("garbled dates never reach storage", func(t *testing.T) {
		expectAuth(mockUserRepo, buyer)

		rec := doRequest(t, handler, http.MethodPost, "/borrow/requests", map[string]interface{}{
			"item_id":    "item-1",
			"start_date": "yesterday",
			"end_date":   "2024-03-04",
		}, "buyer", "secret")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("overlapping slot", func(t *testing.T) {
		expectAuth(mockUserRepo, buyer)
		mockStorage.EXPECT().
			RequestBorrow(gomock.Any(), "buyer-1", gomock.Any()).
			Return(nil, storage.ErrConflict)

		rec := doRequest(t, handler, http.MethodPost, "/borrow/requests", map[string]interface{}{
			"item_id":    "item-1",
			"start_date": "2024-03-01",
			"end_date":   "2024-03-04",
		}, "buyer", "secret")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandleRespondBorrow(t *testing.T) {
	server, mockStorage, mockUserRepo := newTestServer(t)
	handler := server.setupRoutes()

	seller := storage.Actor{ID: "seller-1", Role: storage.RoleSeller}

	expectAuth(mockUserRepo, seller)
	mockStorage.EXPECT().
		RespondBorrow(gomock.Any(), "br-1", "seller-1", "approved", "handle with care").
		Return(nil)

	rec := doRequest(t, handler, http.MethodPut, "/borrow/requests/br-1/respond", map[string]interface{}{
		"status":      "approved",
		"admin_notes": "handle with care",
	}, "seller", "secret")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Request approved"}`, rec.Body.String())
}

func TestExtractResourceID(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/orders/ord-7/cancel", "ord-7"},
		{"/deliveries/dl-3/accept", "dl-3"},
		{"/borrow/requests/br-9/start", "br-9"},
		{"/items/it-2", "it-2"},
		{"/my/orders", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractResourceID(tt.path), tt.path)
	}
}
