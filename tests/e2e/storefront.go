//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"petshop-checkout/internal/infra/client"
	"petshop-checkout/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const ShippingFee = "30000"

type CartLine struct {
	ProductID           int64            `json:"product_id"`
	UnitPrice           decimal.Decimal  `json:"unit_price"`
	DiscountedUnitPrice *decimal.Decimal `json:"discounted_unit_price,omitempty"`
	Quantity            int              `json:"quantity"`
}

// VoucherReply is what the fake voucher service answers for one code. A
// zero Status means 200 with Body.
type VoucherReply struct {
	Status int
	Body   map[string]any
}

type Profile struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type Address struct {
	ID        int64  `json:"id"`
	Province  string `json:"province"`
	District  string `json:"district"`
	Ward      string `json:"ward"`
	Street    string `json:"street"`
	IsDefault bool   `json:"is_default"`
}

// Storefront fakes the cart, promotion, voucher, user and order services
// behind one httptest server.
type Storefront struct {
	server *httptest.Server

	mu              sync.Mutex
	cart            []CartLine
	promotions      []client.PromotionDTO
	promotionCalls  int
	vouchers        map[string]VoucherReply
	profile         Profile
	addresses       []Address
	orderStatus     int
	orders          []client.OrderRequestDTO
	lastBearerToken string
}

func NewStorefront(t *testing.T) *Storefront {
	t.Helper()

	s := &Storefront{}
	s.Reset()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users/{id}/cart", s.handleCart)
	mux.HandleFunc("GET /api/promotions", s.handlePromotions)
	mux.HandleFunc("POST /api/vouchers/apply", s.handleVoucher)
	mux.HandleFunc("GET /api/users/me", s.handleProfile)
	mux.HandleFunc("GET /api/users/me/addresses", s.handleAddresses)
	mux.HandleFunc("POST /api/orders", s.handleOrder)

	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)
	return s
}

func (s *Storefront) URL() string { return s.server.URL }

// Reset restores the default fixtures: a 1,000,000 cart, SUMMER10 (10% over
// 500,000) and FLAT200K, and the voucher PET50K worth a flat 50,000.
func (s *Storefront) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	minOrder := decimal.NewFromInt(500000)
	discounted := decimal.NewFromInt(200000)

	s.cart = []CartLine{
		{ProductID: 101, UnitPrice: decimal.NewFromInt(400000), Quantity: 2},
		{ProductID: 102, UnitPrice: decimal.NewFromInt(250000), DiscountedUnitPrice: &discounted, Quantity: 1},
	}
	s.promotions = []client.PromotionDTO{
		{
			Code:           "SUMMER10",
			Type:           "DISCOUNT",
			DiscountValue:  decimal.NewFromInt(10),
			MinOrderAmount: &minOrder,
			StartDate:      now.AddDate(0, 0, -7),
			EndDate:        now.AddDate(0, 0, 7),
		},
		{
			Code:          "FLAT200K",
			Type:          "DISCOUNT",
			DiscountValue: decimal.NewFromInt(200000),
			StartDate:     now.AddDate(0, 0, -7),
			EndDate:       now.AddDate(0, 0, 7),
		},
	}
	s.promotionCalls = 0
	s.vouchers = map[string]VoucherReply{
		"PET50K": {Body: map[string]any{
			"voucher_id":     42,
			"code":           "PET50K",
			"description":    "50k off",
			"discount_type":  "FIXED_AMOUNT",
			"discount_value": "50000",
		}},
		"EXPIRED1": {Status: http.StatusBadRequest},
	}
	s.profile = Profile{FullName: "Nguyễn Văn A", Phone: "0901234567", Email: "a@example.com"}
	s.addresses = []Address{
		{ID: 9, Province: "Hà Nội", District: "Cầu Giấy", Ward: "Dịch Vọng", Street: "12 Trần Thái Tông", IsDefault: true},
	}
	s.orderStatus = http.StatusCreated
	s.orders = nil
	s.lastBearerToken = ""
}

func (s *Storefront) SetCart(lines ...CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = lines
}

func (s *Storefront) SetOrderStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderStatus = status
}

func (s *Storefront) Orders() []client.OrderRequestDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.OrderRequestDTO(nil), s.orders...)
}

func (s *Storefront) PromotionCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promotionCalls
}

func (s *Storefront) LastBearerToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBearerToken
}

func (s *Storefront) handleCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastBearerToken = bearer(r)
	writeJSON(w, http.StatusOK, map[string]any{"items": s.cart})
}

func (s *Storefront) handlePromotions(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promotionCalls++
	writeJSON(w, http.StatusOK, s.promotions)
}

func (s *Storefront) handleVoucher(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	reply, ok := s.vouchers[req.Code]
	s.mu.Unlock()

	switch {
	case !ok:
		w.WriteHeader(http.StatusNotFound)
	case reply.Status != 0:
		w.WriteHeader(reply.Status)
	default:
		writeJSON(w, http.StatusOK, reply.Body)
	}
}

func (s *Storefront) handleProfile(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.profile)
}

func (s *Storefront) handleAddresses(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.addresses)
}

func (s *Storefront) handleOrder(w http.ResponseWriter, r *http.Request) {
	var req client.OrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orderStatus != http.StatusCreated {
		writeJSON(w, s.orderStatus, map[string]string{"message": "order service unavailable"})
		return
	}
	s.orders = append(s.orders, req)
	writeJSON(w, http.StatusCreated, map[string]string{"order_id": "ORD-1001", "status": "PENDING"})
}

func bearer(r *http.Request) string {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) > len(prefix) {
		return h[len(prefix):]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// EventRecorder captures published OrderSubmitted events.
type EventRecorder struct {
	mu     sync.Mutex
	events []shared.OrderSubmittedEvent
}

func (r *EventRecorder) PublishOrderSubmitted(_ context.Context, e shared.OrderSubmittedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *EventRecorder) Events() []shared.OrderSubmittedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shared.OrderSubmittedEvent(nil), r.events...)
}

func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
