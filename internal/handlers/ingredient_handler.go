package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cocktails-rolodex/cocktails-api/internal/httpresp"
	ucIngredient "github.com/cocktails-rolodex/cocktails-api/internal/usecase/ingredient"
)

type IngredientHandler struct {
	list *ucIngredient.ListIngredients
	get  *ucIngredient.GetIngredient
	log  *zap.Logger
}

func NewIngredientHandler(
	list *ucIngredient.ListIngredients,
	get *ucIngredient.GetIngredient,
	log *zap.Logger,
) *IngredientHandler {
	return &IngredientHandler{
		list: list,
		get:  get,
		log:  log,
	}
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.list.Execute(c.Request.Context(), listParams(c))
	if err != nil {
		fail(c, h.log, "list_ingredients", err)
		return
	}

	httpresp.Array(c, ingredients)
}

func (h *IngredientHandler) Get(c *gin.Context) {
	i, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, "get_ingredient", err)
		return
	}

	httpresp.OK(c, i)
}
