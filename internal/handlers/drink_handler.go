package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/cocktails-rolodex/cocktails-api/internal/domain/drink"
	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
	"github.com/cocktails-rolodex/cocktails-api/internal/httpresp"
	ucDrink "github.com/cocktails-rolodex/cocktails-api/internal/usecase/drink"
)

// ======================================================
// HANDLER
// ======================================================

type DrinkHandler struct {
	list   *ucDrink.ListDrinks
	get    *ucDrink.GetDrink
	create *ucDrink.CreateDrink
	update *ucDrink.UpdateDrink
	remove *ucDrink.DeleteDrink
	log    *zap.Logger
}

func NewDrinkHandler(
	list *ucDrink.ListDrinks,
	get *ucDrink.GetDrink,
	create *ucDrink.CreateDrink,
	update *ucDrink.UpdateDrink,
	remove *ucDrink.DeleteDrink,
	log *zap.Logger,
) *DrinkHandler {
	return &DrinkHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		remove: remove,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type IngredientLineRequest struct {
	Name       string  `json:"name" binding:"required"`
	Amount     string  `json:"amount" binding:"required"`
	AmountUnit *string `json:"amount_unit"`
	Brand      *string `json:"brand"`
	Garnish    bool    `json:"garnish"`
}

type CreateDrinkRequest struct {
	UserID      string                  `json:"userId" binding:"required"`
	Name        string                  `json:"name" binding:"required"`
	Directions  string                  `json:"directions"`
	Serves      int                     `json:"serves"`
	Notes       string                  `json:"notes"`
	Published   bool                    `json:"published"`
	Ingredients []IngredientLineRequest `json:"ingredients" binding:"dive"`
}

type UpdateDrinkRequest struct {
	Name       *string `json:"name"`
	Directions *string `json:"directions"`
	Serves     *int    `json:"serves"`
	Notes      *string `json:"notes"`
	Published  *bool   `json:"published"`
}

// ======================================================
// LIST
// ======================================================

func (h *DrinkHandler) List(c *gin.Context) {
	drinks, err := h.list.Execute(c.Request.Context(), listParams(c))
	if err != nil {
		fail(c, h.log, "list_drinks", err)
		return
	}

	httpresp.Array(c, drinks)
}

// ======================================================
// GET
// ======================================================

func (h *DrinkHandler) Get(c *gin.Context) {
	res, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, "get_drink", err)
		return
	}

	if res.Deleted() {
		httpresp.Text(c, res.Notice)
		return
	}

	httpresp.OK(c, res.Drink)
}

// ======================================================
// CREATE
// ======================================================

func (h *DrinkHandler) Create(c *gin.Context) {
	var req CreateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "userId, name and an amount per ingredient are required.")
		return
	}

	lines := make([]domain.IngredientLine, 0, len(req.Ingredients))
	for _, i := range req.Ingredients {
		lines = append(lines, domain.IngredientLine{
			Name:       i.Name,
			Amount:     i.Amount,
			AmountUnit: i.AmountUnit,
			Brand:      i.Brand,
			Garnish:    i.Garnish,
		})
	}

	d, err := h.create.Execute(c.Request.Context(), ucDrink.CreateDrinkInput{
		UserID:      req.UserID,
		Name:        req.Name,
		Directions:  req.Directions,
		Serves:      req.Serves,
		Notes:       req.Notes,
		Published:   req.Published,
		Ingredients: lines,
	})
	if err != nil {
		fail(c, h.log, "create_drink", err)
		return
	}

	httpresp.Created(c, d)
}

// ======================================================
// UPDATE
// ======================================================

func (h *DrinkHandler) Update(c *gin.Context) {
	var req UpdateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid drink payload.")
		return
	}

	d, err := h.update.Execute(c.Request.Context(), c.Param("id"), domain.Patch{
		Name:       req.Name,
		Directions: req.Directions,
		Serves:     req.Serves,
		Notes:      req.Notes,
		Published:  req.Published,
	})
	if err != nil {
		fail(c, h.log, "update_drink", err)
		return
	}

	httpresp.OK(c, d)
}

// ======================================================
// DELETE
// ======================================================

func (h *DrinkHandler) Delete(c *gin.Context) {
	out, err := h.remove.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, "delete_drink", err)
		return
	}

	httpresp.Text(c, out.Message)
}
