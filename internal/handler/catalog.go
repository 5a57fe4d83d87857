package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/minishop/minishop-go/internal/model"
	"github.com/minishop/minishop-go/internal/service"
)

// CatalogHandler handles HTTP requests for the storefront pages.
type CatalogHandler struct {
	service *service.CatalogService
	render  *Renderer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService, render *Renderer) *CatalogHandler {
	return &CatalogHandler{service: svc, render: render}
}

// HandleIndex handles GET / requests: all items ordered by ascending price.
func (h *CatalogHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		slog.Error("listing items failed", "error", err)
		h.render.ErrorPage(w, r, http.StatusInternalServerError, "There is an error")
		return
	}

	h.render.Render(w, r, http.StatusOK, "index.html", &pageData{
		Title: "Catalog",
		Items: items,
	})
}

// HandleCreateForm handles GET /create requests: the empty item form.
func (h *CatalogHandler) HandleCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "create.html", &pageData{Title: "New item"})
}

// HandleCreateSubmit handles POST /create requests. On success it redirects to
// the catalog; a validation failure re-renders the form with the entered values.
func (h *CatalogHandler) HandleCreateSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := r.ParseForm(); err != nil {
		h.render.ErrorPage(w, r, http.StatusBadRequest, "There is an error")
		return
	}

	form := model.ItemForm{
		Title: r.PostFormValue("title"),
		Price: r.PostFormValue("price"),
	}

	_, err := h.service.CreateItem(r.Context(), form)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.render.Render(w, r, http.StatusUnprocessableEntity, "create.html", &pageData{
				Title:  "New item",
				Form:   map[string]string{"title": form.Title, "price": form.Price},
				Errors: verr.Fields,
			})
			return
		}
		slog.Error("creating item failed", "error", err)
		h.render.ErrorPage(w, r, http.StatusInternalServerError, "There is an error")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleBuy handles GET /buy/{id} requests: a purchase confirmation stub.
// No stock decrement, no payment, no order record.
func (h *CatalogHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.render.ErrorPage(w, r, http.StatusNotFound, "No such item")
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			h.render.ErrorPage(w, r, http.StatusNotFound, "No such item")
			return
		}
		slog.Error("loading item failed", "error", err, "id", id)
		h.render.ErrorPage(w, r, http.StatusInternalServerError, "There is an error")
		return
	}

	h.render.Render(w, r, http.StatusOK, "buy.html", &pageData{
		Title: "Congratulations",
		Item:  item,
	})
}

// HandleContact handles GET /contact requests.
func (h *CatalogHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "contact.html", &pageData{Title: "Contact"})
}

// HandleSupport handles GET /support requests.
func (h *CatalogHandler) HandleSupport(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "support.html", &pageData{Title: "Support"})
}
