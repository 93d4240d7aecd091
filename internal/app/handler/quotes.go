package handler

import (
	"fmt"
	"net/http"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/quotecalc"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// generateQuoteNumber создаёт публичный номер предложения.
// Метка времени плюс случайный суффикс дают устойчивость к коллизиям
// при одновременном создании.
func generateQuoteNumber() string {
	return fmt.Sprintf("QT-%d-%s", time.Now().UnixNano(), uuid.New().String()[:8])
}

// CreateQuote создаёт коммерческое предложение из конструктора
// @Summary Создание коммерческого предложения
// @Description Сохраняет предложение с позициями и переводит исходную заявку в статус quoted
// @Tags Quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuoteRequest true "Данные предложения"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes [post]
func (h *APIHandler) CreateQuote(c *gin.Context) {
	var request dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// Предложение ссылается максимум на один источник
	if request.RFQID != nil && request.ClusterRequestID != nil {
		h.errorResponse(c, http.StatusBadRequest, "Предложение не может ссылаться на заявку и запрос одновременно")
		return
	}

	items := quotecalc.Normalize(request.Items)
	if len(items) == 0 {
		h.errorResponse(c, http.StatusBadRequest, "В предложении нет ни одной заполненной позиции")
		return
	}

	summary := quotecalc.Totals(items, request.TaxRate)

	quote := ds.Quote{
		QuoteNumber:      generateQuoteNumber(),
		RFQID:            request.RFQID,
		ClusterRequestID: request.ClusterRequestID,
		Subtotal:         summary.Subtotal,
		TaxRate:          request.TaxRate,
		TaxAmount:        summary.TaxAmount,
		Total:            summary.Total,
		PaymentTerms:     request.PaymentTerms,
		Notes:            request.Notes,
		Status:           ds.QuoteStatusSent,
	}

	if request.ValidDays > 0 {
		validUntil := time.Now().AddDate(0, 0, request.ValidDays)
		quote.ValidUntil = &validUntil
	}

	quote.Items = make([]ds.QuoteItem, len(items))
	for i, item := range items {
		quote.Items[i] = ds.QuoteItem{
			Position:    i,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}

	if err := h.Repository.CreateQuote(&quote); err != nil {
		logrus.Error("Error creating quote: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения предложения")
		return
	}

	// Исходная заявка переводится в quoted отдельным запросом.
	// Транзакции нет: предложение уже сохранено, поэтому ошибку
	// перевода только логируем.
	if request.RFQID != nil {
		if err := h.Repository.UpdateRFQStatus(*request.RFQID, ds.RequestStatusQuoted); err != nil {
			logrus.Error("Error marking RFQ as quoted: ", err)
		}
	}
	if request.ClusterRequestID != nil {
		if err := h.Repository.UpdateClusterRequestStatus(*request.ClusterRequestID, ds.RequestStatusQuoted); err != nil {
			logrus.Error("Error marking cluster request as quoted: ", err)
		}
	}

	c.JSON(http.StatusCreated, quoteToDTO(&quote))
}

// PreviewQuote считает итоги конструктора без сохранения
// @Summary Предпросмотр итогов предложения
// @Description Возвращает subtotal, налог и итог по переданным позициям
// @Tags Quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.QuotePreviewRequest true "Позиции и ставка налога"
// @Success 200 {object} quotecalc.Summary
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quotes/preview [post]
func (h *APIHandler) PreviewQuote(c *gin.Context) {
	var request dto.QuotePreviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	items := quotecalc.Normalize(request.Items)
	c.JSON(http.StatusOK, quotecalc.Totals(items, request.TaxRate))
}

// GetQuotes возвращает список предложений
// @Summary Список коммерческих предложений
// @Tags Quotes
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу" Enums(sent, viewed, accepted, expired, rejected)
// @Success 200 {object} dto.QuoteListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes [get]
func (h *APIHandler) GetQuotes(c *gin.Context) {
	status := ds.QuoteStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		h.errorResponse(c, http.StatusBadRequest, "Неизвестный статус предложения")
		return
	}

	quotes, err := h.Repository.GetQuotes(status)
	if err != nil {
		logrus.Error("Error getting quotes: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения предложений")
		return
	}

	response := dto.QuoteListResponse{
		Quotes: make([]dto.QuoteResponse, len(quotes)),
		Total:  len(quotes),
	}
	for i := range quotes {
		response.Quotes[i] = quoteToDTO(&quotes[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetQuote возвращает одно предложение
// @Summary Предложение по ID
// @Tags Quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID предложения"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotes/{id} [get]
func (h *APIHandler) GetQuote(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID предложения")
		return
	}

	quote, err := h.Repository.GetQuoteByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Предложение не найдено")
		return
	}

	c.JSON(http.StatusOK, quoteToDTO(quote))
}

// GetQuoteByNumber отдаёт предложение клиенту по публичному номеру.
// Первое открытие переводит sent -> viewed.
// @Summary Предложение по номеру
// @Description Публичный просмотр предложения по номеру из письма
// @Tags Quotes
// @Produce json
// @Param number path string true "Номер предложения (QT-...)"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotes/number/{number} [get]
func (h *APIHandler) GetQuoteByNumber(c *gin.Context) {
	number := c.Param("number")

	quote, err := h.Repository.GetQuoteByNumber(number)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Предложение не найдено")
		return
	}

	if quote.Status == ds.QuoteStatusSent {
		if err := h.Repository.MarkQuoteViewed(quote.ID); err != nil {
			logrus.Error("Error marking quote viewed: ", err)
		} else {
			quote.Status = ds.QuoteStatusViewed
		}
	}

	c.JSON(http.StatusOK, quoteToDTO(quote))
}

// UpdateQuoteStatus меняет статус предложения
// @Summary Смена статуса предложения
// @Description Переводит предложение в любой известный статус, при accepted фиксируется время
// @Tags Quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID предложения"
// @Param request body dto.UpdateQuoteStatusRequest true "Новый статус"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotes/{id}/status [put]
func (h *APIHandler) UpdateQuoteStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID предложения")
		return
	}

	var request dto.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetQuoteByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Предложение не найдено")
		return
	}

	if err := h.Repository.UpdateQuoteStatus(id, ds.QuoteStatus(request.Status)); err != nil {
		logrus.Error("Error updating quote status: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка смены статуса")
		return
	}

	if adminID, _, err := h.getUserFromContext(c); err == nil {
		logrus.Infof("Quote %d status set to %s by user %d", id, request.Status, adminID)
	}

	h.successResponse(c, http.StatusOK, "статус обновлён", nil)
}

func quoteToDTO(quote *ds.Quote) dto.QuoteResponse {
	items := make([]dto.QuoteItemResponse, len(quote.Items))
	for i, item := range quote.Items {
		items[i] = dto.QuoteItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}

	return dto.QuoteResponse{
		ID:               quote.ID,
		QuoteNumber:      quote.QuoteNumber,
		RFQID:            quote.RFQID,
		ClusterRequestID: quote.ClusterRequestID,
		Items:            items,
		Subtotal:         quote.Subtotal,
		TaxRate:          quote.TaxRate,
		TaxAmount:        quote.TaxAmount,
		Total:            quote.Total,
		PaymentTerms:     quote.PaymentTerms,
		ValidUntil:       quote.ValidUntil,
		Notes:            quote.Notes,
		Status:           string(quote.Status),
		CreatedAt:        quote.CreatedAt,
		AcceptedAt:       quote.AcceptedAt,
	}
}
