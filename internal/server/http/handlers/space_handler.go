package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/coworking/internal/server/http/dto"
)

type SpaceHandler struct {
	facade CatalogFacade
}

func NewSpaceHandler(facade CatalogFacade) *SpaceHandler {
	return &SpaceHandler{facade: facade}
}

// List handles GET /api/spaces.
func (h *SpaceHandler) List(c *gin.Context) {
	spaces := h.facade.Spaces()
	response := make([]dto.SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		options := make([]dto.OfferResponse, 0, len(s.Options))
		for _, o := range s.Options {
			options = append(options, dto.OfferResponse{Name: o.Name, Price: o.Price, Period: string(o.Period)})
		}
		response = append(response, dto.SpaceResponse{Type: s.Type, Name: s.Name, Options: options})
	}
	c.JSON(http.StatusOK, response)
}
