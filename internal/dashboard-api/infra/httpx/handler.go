package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	analytics "github.com/jcmexdev/bundle-builder/internal/analytics-service"
	"github.com/jcmexdev/bundle-builder/internal/bundle-service/domain"
	customer "github.com/jcmexdev/bundle-builder/internal/customer-service/domain"
	"github.com/jcmexdev/bundle-builder/internal/dashboard-api/core/ports"
	"github.com/jcmexdev/bundle-builder/internal/dashboard-api/infra/httpx/middlewares"
)

// Handler is the presentation layer of the dashboard. It validates input,
// issues store commands and renders the state it reads back.
type Handler struct {
	store     ports.BundleStore
	customers ports.CustomerDirectory
	snapshots ports.SnapshotSaver // nil-safe: nothing is persisted if nil
}

// NewHandler wires the handler. saver may be nil when running purely in memory.
func NewHandler(store ports.BundleStore, customers ports.CustomerDirectory, saver ports.SnapshotSaver) *Handler {
	return &Handler{
		store:     store,
		customers: customers,
		snapshots: saver,
	}
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Products())
}

// ListBundles supports ?search= on the name and ?status=all|active|draft.
func (h *Handler) ListBundles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bundles := domain.FilterBundles(h.store.Bundles(), q.Get("search"), q.Get("status"))
	writeJSON(w, http.StatusOK, mapBundles(bundles))
}

func (h *Handler) GetBundle(w http.ResponseWriter, r *http.Request) {
	b, ok := h.store.Bundle(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "bundle_not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, mapBundle(b))
}

// CreateBundle applies the form rules the store itself does not enforce: a
// non-empty name, at least one known product and valid enum values.
func (h *Handler) CreateBundle(w http.ResponseWriter, r *http.Request) {
	var req CreateBundleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "please enter a bundle name")
		return
	}
	if len(req.ProductIDs) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "please select at least one product")
		return
	}
	products, err := h.resolveProducts(req.ProductIDs)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_product", err.Error())
		return
	}

	discountType, err := domain.ParseDiscountType(defaultString(req.DiscountType, string(domain.DiscountPercentage)))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_discount_type", err.Error())
		return
	}
	if req.DiscountValue.IsNegative() {
		writeError(w, http.StatusBadRequest, "invalid_discount_value", "discount value must not be negative")
		return
	}
	status, err := domain.ParseBundleStatus(defaultString(req.Status, string(domain.StatusDraft)))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_status", err.Error())
		return
	}

	b := h.store.CreateBundle(domain.NewBundle{
		Name:          name,
		Products:      products,
		DiscountType:  discountType,
		DiscountValue: req.DiscountValue,
		Status:        status,
	})
	h.persist(r)

	slog.InfoContext(r.Context(), "bundle created",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"bundle_id", b.ID,
		"products", len(products),
	)
	writeJSON(w, http.StatusCreated, mapBundle(b))
}

// UpdateBundle answers 204 when the id is unknown: the store treats that as a
// silent no-op and so does the API.
func (h *Handler) UpdateBundle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateBundleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	patch, code, err := h.buildPatch(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}

	h.store.UpdateBundle(id, patch)
	h.persist(r)

	b, ok := h.store.Bundle(id)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, mapBundle(b))
}

func (h *Handler) DeleteBundle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.store.DeleteBundle(id)
	h.persist(r)

	slog.InfoContext(r.Context(), "bundle deleted", "bundle_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// PreviewBundle prices a prospective bundle without storing anything.
func (h *Handler) PreviewBundle(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	products, err := h.resolveProducts(req.ProductIDs)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_product", err.Error())
		return
	}
	discountType, err := domain.ParseDiscountType(defaultString(req.DiscountType, string(domain.DiscountPercentage)))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_discount_type", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, PreviewResponse{
		Products: products,
		Quote:    domain.Price(products, discountType, req.DiscountValue),
	})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapCart(h.store.Cart()))
}

// AddToCart copies the current version of the bundle into the cart.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	b, ok := h.store.Bundle(req.BundleID)
	if !ok {
		writeError(w, http.StatusNotFound, "bundle_not_found", req.BundleID)
		return
	}

	h.store.AddToCart(b, req.Quantity)
	h.persist(r)
	writeJSON(w, http.StatusOK, mapCart(h.store.Cart()))
}

// UpdateCartQuantity sets the absolute quantity; zero or below removes the line.
func (h *Handler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	h.store.UpdateCartQuantity(chi.URLParam(r, "bundleID"), req.Quantity)
	h.persist(r)
	writeJSON(w, http.StatusOK, mapCart(h.store.Cart()))
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveFromCart(chi.URLParam(r, "bundleID"))
	h.persist(r)
	writeJSON(w, http.StatusOK, mapCart(h.store.Cart()))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.ClearCart()
	h.persist(r)
	writeJSON(w, http.StatusOK, mapCart(h.store.Cart()))
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Metrics())
}

// ListCustomers supports ?search= on name or email and ?status=all|active|inactive.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.customers.List(customer.Filter{
		Search: q.Get("search"),
		Status: q.Get("status"),
	}))
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.Get(chi.URLParam(r, "id"))
	if errors.Is(err, customer.ErrCustomerNotFound) {
		writeError(w, http.StatusNotFound, "customer_not_found", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "customer_lookup_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) CustomerSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.customers.Summary())
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.MockReport())
}

// persist is best effort: a failed save is logged by the saver and the
// request still succeeds.
func (h *Handler) persist(r *http.Request) {
	if h.snapshots == nil {
		return
	}
	_ = h.snapshots.Save(r.Context())
}

func (h *Handler) resolveProducts(ids []string) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := h.store.Product(id)
		if !ok {
			return nil, errors.New("unknown product id " + id)
		}
		products = append(products, p)
	}
	return products, nil
}

func (h *Handler) buildPatch(req UpdateBundleRequest) (domain.BundlePatch, string, error) {
	patch := domain.BundlePatch{
		Sales:   req.Sales,
		Revenue: req.Revenue,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return patch, "invalid_request", errors.New("bundle name must not be empty")
		}
		patch.Name = &name
	}
	if req.ProductIDs != nil {
		products, err := h.resolveProducts(*req.ProductIDs)
		if err != nil {
			return patch, "unknown_product", err
		}
		patch.Products = &products
	}
	if req.DiscountType != nil {
		dt, err := domain.ParseDiscountType(*req.DiscountType)
		if err != nil {
			return patch, "invalid_discount_type", err
		}
		patch.DiscountType = &dt
	}
	if req.DiscountValue != nil {
		if req.DiscountValue.IsNegative() {
			return patch, "invalid_discount_value", errors.New("discount value must not be negative")
		}
		patch.DiscountValue = req.DiscountValue
	}
	if req.Status != nil {
		st, err := domain.ParseBundleStatus(*req.Status)
		if err != nil {
			return patch, "invalid_status", err
		}
		patch.Status = &st
	}
	return patch, "", nil
}

func mapBundle(b domain.Bundle) BundleResponse {
	return BundleResponse{Bundle: b, Pricing: b.Quote()}
}

func mapBundles(bundles []domain.Bundle) []BundleResponse {
	out := make([]BundleResponse, len(bundles))
	for i, b := range bundles {
		out[i] = mapBundle(b)
	}
	return out
}

func mapCart(items []domain.CartItem) CartResponse {
	lines := make([]CartLineResponse, len(items))
	for i, it := range items {
		lines[i] = CartLineResponse{
			Bundle:    mapBundle(it.Bundle),
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		}
	}
	return CartResponse{
		Items:      lines,
		TotalItems: domain.CartItemCount(items),
		Total:      domain.CartTotal(items),
	}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
