package basket

import (
	"errors"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Bootique/internal/money"
	"Bootique/pkg/kit"
)

const maxAddItemBody = 1 << 16

type Server struct {
	Service *Service
	Log     *zap.Logger

	// WriteLimiter, when set, throttles item additions per client IP.
	WriteLimiter *kit.IPRateLimiter
}

type addItemReq struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`

	// Price and TotalPrice are accepted so a line echoed from a basket view
	// can be posted back. Both are ignored; the catalog sets the price.
	Price      *money.Amount `json:"price,omitempty"`
	TotalPrice *money.Amount `json:"totalPrice,omitempty"`
}

type sessionResp struct {
	ID string `json:"id"`
}

// Routes serves baskets; it is mounted under /baskets.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/", s.create)
	r.Get("/{id}", s.get)

	var limit []func(http.Handler) http.Handler
	if s.WriteLimiter != nil {
		limit = append(limit, s.WriteLimiter.Middleware)
	}
	r.With(limit...).Post("/{id}/items", s.addItem)

	return r
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	id, b := s.Service.NewSession()
	w.Header().Set("Location", path.Join(r.URL.Path, id))
	kit.WriteJSON(w, http.StatusCreated, struct {
		sessionResp
		View
	}{sessionResp{ID: id}, b.View()})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	kit.WriteJSON(w, http.StatusOK, s.Service.Basket(id).View())
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req addItemReq
	if err := kit.DecodeJSON(w, r, maxAddItemBody, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	b, err := s.Service.AddItem(id, req.ProductID, req.Quantity)
	if err != nil {
		s.writeAddError(w, r, req, err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, b.View())
}

func (s *Server) writeAddError(w http.ResponseWriter, r *http.Request, req addItemReq, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"productId": req.ProductID})
	default:
		if s.Log != nil {
			s.Log.Error("add item failed", zap.Error(err), zap.String("product_id", req.ProductID))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
