package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
	"github.com/arvelin/fieldflow/internal/service"
)

type Handler struct {
	svc *service.Service
	log zerolog.Logger
}

func NewHandler(svc *service.Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Register(api *gin.RouterGroup) {
	api.GET("/workorders", h.listWorkOrders)
	api.POST("/workorders", h.createWorkOrder)
	api.GET("/workorders/export", h.exportWorkOrders)
	api.GET("/workorders/:id", h.getWorkOrder)
	api.PATCH("/workorders/:id", h.updateWorkOrder)
	api.DELETE("/workorders/:id", h.deleteWorkOrder)
	api.POST("/workorders/:id/assign", h.assignWorkOrder)
	api.POST("/workorders/:id/status", h.updateWorkOrderStatus)
	api.POST("/workorders/:id/materials", h.addMaterialLine)
	api.DELETE("/workorders/:id/materials/:lineID", h.removeMaterialLine)
	api.POST("/workorders/:id/time-entries", h.addTimeEntry)
	api.POST("/workorders/:id/travels", h.addTravel)

	api.GET("/quotes", h.listQuotes)
	api.POST("/quotes", h.createQuote)
	api.GET("/quotes/:id", h.getQuote)
	api.PATCH("/quotes/:id", h.updateQuote)
	api.DELETE("/quotes/:id", h.deleteQuote)
	api.POST("/quotes/:id/status", h.updateQuoteStatus)
	api.POST("/quotes/:id/convert", h.convertQuote)
	api.GET("/quotes/:id/pdf", h.quotePDF)

	api.GET("/customers", h.listCustomers)
	api.POST("/customers", h.createCustomer)
	api.PATCH("/customers/:id", h.updateCustomer)
	api.DELETE("/customers/:id", h.deleteCustomer)

	api.GET("/materials", h.listMaterials)
	api.POST("/materials", h.createMaterial)
	api.PATCH("/materials/:id", h.updateMaterial)
	api.DELETE("/materials/:id", h.deleteMaterial)

	api.GET("/users", h.listUsers)
	api.GET("/dashboard/stats", h.dashboardStats)
}

// --- work orders ---

type createWorkOrderRequest struct {
	Title          string           `json:"title" binding:"required"`
	Description    string           `json:"description"`
	Priority       string           `json:"priority"`
	CustomerID     string           `json:"customerId" binding:"required"`
	ContactID      *string          `json:"contactId"`
	CreatedBy      string           `json:"createdBy"`
	ScheduledDate  *time.Time       `json:"scheduledDate"`
	EstimatedHours *decimal.Decimal `json:"estimatedHours"`
	Notes          string           `json:"notes"`
	InternalNotes  string           `json:"internalNotes"`
}

func (h *Handler) listWorkOrders(c *gin.Context) {
	orders, err := h.svc.ListWorkOrders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getWorkOrder(c *gin.Context) {
	order, err := h.svc.GetWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) createWorkOrder(c *gin.Context) {
	var req createWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input := service.CreateWorkOrderInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		CustomerID:    req.CustomerID,
		ContactID:     req.ContactID,
		CreatedBy:     req.CreatedBy,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
		InternalNotes: req.InternalNotes,
	}
	if req.EstimatedHours != nil {
		input.EstimatedHours = *req.EstimatedHours
	}
	order, err := h.svc.CreateWorkOrder(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

type updateWorkOrderRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Priority       *string          `json:"priority"`
	ScheduledDate  *time.Time       `json:"scheduledDate"`
	EstimatedHours *decimal.Decimal `json:"estimatedHours"`
	Notes          *string          `json:"notes"`
	InternalNotes  *string          `json:"internalNotes"`
}

func (h *Handler) updateWorkOrder(c *gin.Context) {
	var req updateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.UpdateWorkOrder(c.Request.Context(), c.Param("id"), service.UpdateWorkOrderInput{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		ScheduledDate:  req.ScheduledDate,
		EstimatedHours: req.EstimatedHours,
		Notes:          req.Notes,
		InternalNotes:  req.InternalNotes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) deleteWorkOrder(c *gin.Context) {
	if err := h.svc.DeleteWorkOrder(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type assignWorkOrderRequest struct {
	UserID *string `json:"userId"`
}

func (h *Handler) assignWorkOrder(c *gin.Context) {
	var req assignWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID != nil && strings.TrimSpace(*req.UserID) == "" {
		req.UserID = nil
	}
	order, err := h.svc.AssignWorkOrder(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateWorkOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.UpdateWorkOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type addMaterialLineRequest struct {
	MaterialID string           `json:"materialId" binding:"required"`
	Quantity   decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice  *decimal.Decimal `json:"unitPrice"`
	Notes      string           `json:"notes"`
}

func (h *Handler) addMaterialLine(c *gin.Context) {
	var req addMaterialLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.AddMaterialLine(c.Request.Context(), c.Param("id"), service.AddMaterialLineInput{
		MaterialID: req.MaterialID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		Notes:      req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) removeMaterialLine(c *gin.Context) {
	order, err := h.svc.RemoveMaterialLine(c.Request.Context(), c.Param("id"), c.Param("lineID"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type addTimeEntryRequest struct {
	UserID       string          `json:"userId" binding:"required"`
	Date         time.Time       `json:"date"`
	StartTime    time.Time       `json:"startTime" binding:"required"`
	EndTime      *time.Time      `json:"endTime"`
	BreakMinutes int             `json:"breakMinutes"`
	IsBillable   bool            `json:"isBillable"`
	HourlyRate   decimal.Decimal `json:"hourlyRate"`
	Notes        string          `json:"notes"`
}

func (h *Handler) addTimeEntry(c *gin.Context) {
	var req addTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.AddTimeEntry(c.Request.Context(), c.Param("id"), service.AddTimeEntryInput{
		UserID:       req.UserID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		IsBillable:   req.IsBillable,
		HourlyRate:   req.HourlyRate,
		Notes:        req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type addTravelRequest struct {
	UserID            string          `json:"userId" binding:"required"`
	Date              time.Time       `json:"date"`
	StartTime         *time.Time      `json:"startTime"`
	EndTime           *time.Time      `json:"endTime"`
	DistanceKm        decimal.Decimal `json:"distanceKm"`
	TravelTimeMinutes int             `json:"travelTimeMinutes"`
	Cost              decimal.Decimal `json:"cost"`
	Notes             string          `json:"notes"`
}

func (h *Handler) addTravel(c *gin.Context) {
	var req addTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.AddTravel(c.Request.Context(), c.Param("id"), service.AddTravelInput{
		UserID:            req.UserID,
		Date:              req.Date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		DistanceKm:        req.DistanceKm,
		TravelTimeMinutes: req.TravelTimeMinutes,
		Cost:              req.Cost,
		Notes:             req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) exportWorkOrders(c *gin.Context) {
	fileName, content, err := h.svc.ExportOperationsReport(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// --- quotes ---

type quoteItemRequest struct {
	Description     string          `json:"description" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	MaterialID      *string         `json:"materialId"`
}

type createQuoteRequest struct {
	Title           string             `json:"title" binding:"required"`
	Description     string             `json:"description"`
	CustomerID      string             `json:"customerId" binding:"required"`
	ContactID       *string            `json:"contactId"`
	CreatedBy       string             `json:"createdBy"`
	ValidUntil      time.Time          `json:"validUntil"`
	Items           []quoteItemRequest `json:"items"`
	DiscountPercent decimal.Decimal    `json:"discountPercent"`
	VATPercent      *decimal.Decimal   `json:"vatPercent"`
	Notes           string             `json:"notes"`
	InternalNotes   string             `json:"internalNotes"`
}

func (h *Handler) listQuotes(c *gin.Context) {
	quotes, err := h.svc.ListQuotes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (h *Handler) getQuote(c *gin.Context) {
	quote, err := h.svc.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *Handler) createQuote(c *gin.Context) {
	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quote, err := h.svc.CreateQuote(c.Request.Context(), service.CreateQuoteInput{
		Title:           req.Title,
		Description:     req.Description,
		CustomerID:      req.CustomerID,
		ContactID:       req.ContactID,
		CreatedBy:       req.CreatedBy,
		ValidUntil:      req.ValidUntil,
		Items:           toQuoteItemInputs(req.Items),
		DiscountPercent: req.DiscountPercent,
		VATPercent:      req.VATPercent,
		Notes:           req.Notes,
		InternalNotes:   req.InternalNotes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quote)
}

type updateQuoteRequest struct {
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	ValidUntil      *time.Time         `json:"validUntil"`
	Items           []quoteItemRequest `json:"items"`
	DiscountPercent *decimal.Decimal   `json:"discountPercent"`
	VATPercent      *decimal.Decimal   `json:"vatPercent"`
	Notes           *string            `json:"notes"`
	InternalNotes   *string            `json:"internalNotes"`
}

func (h *Handler) updateQuote(c *gin.Context) {
	var req updateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input := service.UpdateQuoteInput{
		Title:           req.Title,
		Description:     req.Description,
		ValidUntil:      req.ValidUntil,
		DiscountPercent: req.DiscountPercent,
		VATPercent:      req.VATPercent,
		Notes:           req.Notes,
		InternalNotes:   req.InternalNotes,
	}
	if req.Items != nil {
		input.Items = toQuoteItemInputs(req.Items)
	}
	quote, err := h.svc.UpdateQuote(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *Handler) deleteQuote(c *gin.Context) {
	if err := h.svc.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateQuoteStatusRequest struct {
	Status          string  `json:"status" binding:"required"`
	RejectionReason *string `json:"rejectionReason"`
}

func (h *Handler) updateQuoteStatus(c *gin.Context) {
	var req updateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quote, err := h.svc.UpdateQuoteStatus(c.Request.Context(), c.Param("id"), service.UpdateQuoteStatusInput{
		Status:          req.Status,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *Handler) convertQuote(c *gin.Context) {
	order, err := h.svc.ConvertQuoteToWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) quotePDF(c *gin.Context) {
	fileName, content, err := h.svc.RenderQuotePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/pdf", content)
}

func toQuoteItemInputs(items []quoteItemRequest) []service.QuoteItemInput {
	out := make([]service.QuoteItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, service.QuoteItemInput{
			Description:     item.Description,
			Quantity:        item.Quantity,
			Unit:            item.Unit,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			MaterialID:      item.MaterialID,
		})
	}
	return out
}

// --- customers ---

type contactRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Mobile    *string `json:"mobile"`
	Title     *string `json:"title"`
	IsPrimary bool    `json:"isPrimary"`
}

type createCustomerRequest struct {
	Type         string           `json:"type"`
	Name         string           `json:"name" binding:"required"`
	OrgNumber    *string          `json:"orgNumber"`
	PersonNumber *string          `json:"personNumber"`
	Address      model.Address    `json:"address"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Website      *string          `json:"website"`
	PaymentTerms *int             `json:"paymentTerms"`
	Notes        string           `json:"notes"`
	Contacts     []contactRequest `json:"contacts"`
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.svc.ListCustomers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.svc.CreateCustomer(c.Request.Context(), service.CreateCustomerInput{
		Type:         req.Type,
		Name:         req.Name,
		OrgNumber:    req.OrgNumber,
		PersonNumber: req.PersonNumber,
		Address:      req.Address,
		Email:        req.Email,
		Phone:        req.Phone,
		Website:      req.Website,
		PaymentTerms: req.PaymentTerms,
		Notes:        req.Notes,
		Contacts:     toContactInputs(req.Contacts),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

type updateCustomerRequest struct {
	Name         *string          `json:"name"`
	OrgNumber    *string          `json:"orgNumber"`
	PersonNumber *string          `json:"personNumber"`
	Address      *model.Address   `json:"address"`
	Email        *string          `json:"email"`
	Phone        *string          `json:"phone"`
	Website      *string          `json:"website"`
	PaymentTerms *int             `json:"paymentTerms"`
	Notes        *string          `json:"notes"`
	Contacts     []contactRequest `json:"contacts"`
}

func (h *Handler) updateCustomer(c *gin.Context) {
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input := service.UpdateCustomerInput{
		Name:         req.Name,
		OrgNumber:    req.OrgNumber,
		PersonNumber: req.PersonNumber,
		Address:      req.Address,
		Email:        req.Email,
		Phone:        req.Phone,
		Website:      req.Website,
		PaymentTerms: req.PaymentTerms,
		Notes:        req.Notes,
	}
	if req.Contacts != nil {
		input.Contacts = toContactInputs(req.Contacts)
	}
	customer, err := h.svc.UpdateCustomer(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	if err := h.svc.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toContactInputs(contacts []contactRequest) []service.ContactInput {
	out := make([]service.ContactInput, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, service.ContactInput{
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			Email:     contact.Email,
			Phone:     contact.Phone,
			Mobile:    contact.Mobile,
			Title:     contact.Title,
			IsPrimary: contact.IsPrimary,
		})
	}
	return out
}

// --- materials ---

type createMaterialRequest struct {
	ArticleNumber         string           `json:"articleNumber"`
	Name                  string           `json:"name" binding:"required"`
	Description           string           `json:"description"`
	Unit                  string           `json:"unit"`
	Price                 decimal.Decimal  `json:"price"`
	PurchasePrice         *decimal.Decimal `json:"purchasePrice"`
	Supplier              string           `json:"supplier"`
	SupplierArticleNumber *string          `json:"supplierArticleNumber"`
	Category              string           `json:"category"`
	Subcategory           *string          `json:"subcategory"`
	StockQuantity         *decimal.Decimal `json:"stockQuantity"`
	MinStockLevel         *decimal.Decimal `json:"minStockLevel"`
}

func (h *Handler) listMaterials(c *gin.Context) {
	materials, err := h.svc.ListMaterials(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *Handler) createMaterial(c *gin.Context) {
	var req createMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	material, err := h.svc.CreateMaterial(c.Request.Context(), service.CreateMaterialInput{
		ArticleNumber:         req.ArticleNumber,
		Name:                  req.Name,
		Description:           req.Description,
		Unit:                  req.Unit,
		Price:                 req.Price,
		PurchasePrice:         req.PurchasePrice,
		Supplier:              req.Supplier,
		SupplierArticleNumber: req.SupplierArticleNumber,
		Category:              req.Category,
		Subcategory:           req.Subcategory,
		StockQuantity:         req.StockQuantity,
		MinStockLevel:         req.MinStockLevel,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, material)
}

type updateMaterialRequest struct {
	ArticleNumber *string          `json:"articleNumber"`
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Unit          *string          `json:"unit"`
	Price         *decimal.Decimal `json:"price"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	Category      *string          `json:"category"`
	Subcategory   *string          `json:"subcategory"`
	StockQuantity *decimal.Decimal `json:"stockQuantity"`
	MinStockLevel *decimal.Decimal `json:"minStockLevel"`
	IsActive      *bool            `json:"isActive"`
}

func (h *Handler) updateMaterial(c *gin.Context) {
	var req updateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	material, err := h.svc.UpdateMaterial(c.Request.Context(), c.Param("id"), service.UpdateMaterialInput{
		ArticleNumber: req.ArticleNumber,
		Name:          req.Name,
		Description:   req.Description,
		Unit:          req.Unit,
		Price:         req.Price,
		PurchasePrice: req.PurchasePrice,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *Handler) deleteMaterial(c *gin.Context) {
	if err := h.svc.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- users & dashboard ---

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.svc.GetDashboardStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyConverted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
