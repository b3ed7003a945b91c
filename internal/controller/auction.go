package controller

import (
	"net/http"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type auctionRoutesHandler struct {
	auctionService service.Auction
	validate       *validator.Validate
}

func newAuctionRoutesHandler(outer *echo.Group, services *service.Services, guard *sessionGuard, v *validator.Validate) *auctionRoutesHandler {
	h := &auctionRoutesHandler{auctionService: services.Auction, validate: v}

	// Public storefront: browse and bid.
	outer.GET("/auction/items", h.GetPublicItems)
	outer.GET("/auction/items/:itemId", h.GetPublicItem)
	outer.POST("/auction/items/:itemId/bids", h.PlaceBid)

	g := adminGroup(outer, "/admin/auction", guard, entity.PermissionAuctionListing)
	g.GET("/items", h.GetItems)
	g.POST("/items", h.PostItem)
	g.POST("/items/import", h.ImportItems)
	g.PATCH("/items/:itemId", h.UpdateItem)
	g.DELETE("/items", h.DeleteItems)
	g.POST("/items/publish", h.PublishItems)
	g.POST("/items/:itemId/finalize", h.FinalizeSale)

	return h
}

// /auction/items
func (h *auctionRoutesHandler) GetPublicItems(c echo.Context) error {
	items, err := h.auctionService.GetItems(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	// Drafts are internal until published.
	visible := make([]entity.AuctionItemOutputModel, 0, len(items))
	for _, item := range items {
		if item.Status != string(entity.AuctionDraft) {
			visible = append(visible, item)
		}
	}

	if e := c.JSON(http.StatusOK, visible); e != nil {
		return e
	}

	return nil
}

// /auction/items/:itemId
func (h *auctionRoutesHandler) GetPublicItem(c echo.Context) error {
	item, err := h.auctionService.GetItemById(c.Request().Context(), c.Param("itemId"))
	if err == nil && item.Status == string(entity.AuctionDraft) {
		err = service.ErrItemNotFound
	}
	if err == nil {
		if e := c.JSON(http.StatusOK, item); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrItemNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no auction item with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type placeBidInput struct {
	ItemId  string  `param:"itemId" validate:"required,max=100"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required,max=30"`
	Address string  `json:"address" validate:"max=300"`
}

// /auction/items/:itemId/bids
func (h *auctionRoutesHandler) PlaceBid(c echo.Context) error {
	var input placeBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.ItemId = c.Param("itemId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	bidder := entity.Bidder{Name: input.Name, Email: input.Email, Phone: input.Phone, Address: input.Address}
	item, err := h.auctionService.PlaceBid(c.Request().Context(), input.ItemId, input.Amount, bidder)
	if err == nil {
		if e := c.JSON(http.StatusOK, item); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrItemNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no auction item with given id"}); e != nil {
			return e
		}
	case service.ErrItemNotListed:
		if e := c.JSON(http.StatusConflict, errorResponse{"This item is not open for bidding"}); e != nil {
			return e
		}
	case service.ErrInvalidBid:
		if e := c.JSON(http.StatusConflict, errorResponse{"Your bid must be higher than the current price"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /admin/auction/items
func (h *auctionRoutesHandler) GetItems(c echo.Context) error {
	items, err := h.auctionService.GetItems(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, items); e != nil {
		return e
	}

	return nil
}

type postAuctionItemInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"max=1000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	ImageUrls   []string `json:"imageUrls" validate:"dive,url"`
	Category    string   `json:"category" validate:"required"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=Draft Listed"`
}

func (i *postAuctionItemInput) toModel() entity.CreateAuctionItemInput {
	return entity.CreateAuctionItemInput{
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		ImageUrls:   i.ImageUrls,
		Category:    i.Category,
		Quantity:    i.Quantity,
		Status:      entity.AuctionItemStatus(i.Status),
	}
}

// /admin/auction/items
func (h *auctionRoutesHandler) PostItem(c echo.Context) error {
	var input postAuctionItemInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := input.toModel()
	item, err := h.auctionService.AddItem(c.Request().Context(), &model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, item); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidCategory:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Unknown auction category"}); e != nil {
			return e
		}
	case service.ErrInvalidStatus:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"New items can only be Draft or Listed"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type importAuctionItemsInput struct {
	Items []postAuctionItemInput `json:"items" validate:"required,min=1,dive"`
}

// /admin/auction/items/import
func (h *auctionRoutesHandler) ImportItems(c echo.Context) error {
	var input importAuctionItemsInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	models := make([]entity.CreateAuctionItemInput, 0, len(input.Items))
	for i := range input.Items {
		models = append(models, input.Items[i].toModel())
	}

	items, err := h.auctionService.ImportItems(c.Request().Context(), models)
	if err == nil {
		if e := c.JSON(http.StatusCreated, items); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidCategory:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"One of the items has an unknown category"}); e != nil {
			return e
		}
	case service.ErrInvalidStatus:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Imported items can only be Draft or Listed"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type updateAuctionItemInput struct {
	ItemId      string   `param:"itemId" validate:"required,max=100"`
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageUrls   []string `json:"imageUrls" validate:"omitempty,dive,url"`
	Category    *string  `json:"category" validate:"omitempty"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	Status      *string  `json:"status" validate:"omitempty,oneof=Draft Listed BidOn Sold"`
}

// /admin/auction/items/:itemId
func (h *auctionRoutesHandler) UpdateItem(c echo.Context) error {
	var input updateAuctionItemInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.ItemId = c.Param("itemId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.UpdateAuctionItemInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageUrls:   input.ImageUrls,
		Category:    input.Category,
		Quantity:    input.Quantity,
	}
	if input.Status != nil {
		status := entity.AuctionItemStatus(*input.Status)
		model.Status = &status
	}

	item, err := h.auctionService.UpdateItem(c.Request().Context(), input.ItemId, model)
	if err == nil {
		if e := c.JSON(http.StatusOK, item); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrItemNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no auction item with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidCategory:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Unknown auction category"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type auctionItemIdsInput struct {
	Ids []string `json:"ids" validate:"required,min=1,dive,required"`
}

// /admin/auction/items
func (h *auctionRoutesHandler) DeleteItems(c echo.Context) error {
	var input auctionItemIdsInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	if err := h.auctionService.DeleteItems(c.Request().Context(), input.Ids); err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, map[string]bool{"deleted": true}); e != nil {
		return e
	}

	return nil
}

// /admin/auction/items/publish
func (h *auctionRoutesHandler) PublishItems(c echo.Context) error {
	var input auctionItemIdsInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	if err := h.auctionService.PublishItems(c.Request().Context(), input.Ids); err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, map[string]bool{"published": true}); e != nil {
		return e
	}

	return nil
}

// /admin/auction/items/:itemId/finalize
func (h *auctionRoutesHandler) FinalizeSale(c echo.Context) error {
	item, err := h.auctionService.FinalizeSale(c.Request().Context(), c.Param("itemId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, item); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrItemNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no auction item with given id"}); e != nil {
			return e
		}
	case service.ErrNotBiddable:
		if e := c.JSON(http.StatusConflict, errorResponse{"Only an item with an active bid can be finalized"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
