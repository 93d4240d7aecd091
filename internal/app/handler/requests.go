package handler

import (
	"net/http"
	"strconv"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ RFQ ============

// SubmitRFQ принимает заявку с публичной формы
// @Summary Отправка заявки на GPU
// @Description Создаёт заявку на аренду или покупку GPU с публичной формы сайта
// @Tags RFQs
// @Accept json
// @Produce json
// @Param request body dto.SubmitRFQRequest true "Данные заявки"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/rfqs [post]
func (h *APIHandler) SubmitRFQ(c *gin.Context) {
	var request dto.SubmitRFQRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	rfq := ds.RFQ{
		Company:                request.Company,
		Email:                  request.Email,
		Phone:                  request.Phone,
		GPUType:                request.GPUType,
		Quantity:               request.Quantity,
		DurationMonths:         request.DurationMonths,
		UseCase:                request.UseCase,
		BudgetRange:            request.BudgetRange,
		AdditionalRequirements: request.AdditionalRequirements,
		Status:                 ds.RequestStatusPending,
	}

	if err := h.Repository.CreateRFQ(&rfq); err != nil {
		logrus.Error("Error creating RFQ: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения заявки")
		return
	}

	h.successResponse(c, http.StatusCreated, "заявка принята", rfqToDTO(&rfq))
}

// GetRFQs возвращает список заявок для админ-панели
// @Summary Список заявок на GPU
// @Description Возвращает заявки с фильтрацией по статусу (только для администраторов)
// @Tags RFQs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу" Enums(pending, reviewing, quoted, accepted, rejected)
// @Success 200 {object} dto.RFQListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/rfqs [get]
func (h *APIHandler) GetRFQs(c *gin.Context) {
	status := ds.RequestStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		h.errorResponse(c, http.StatusBadRequest, "Неизвестный статус заявки")
		return
	}

	rfqs, err := h.Repository.GetRFQs(status)
	if err != nil {
		logrus.Error("Error getting RFQs: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения заявок")
		return
	}

	response := dto.RFQListResponse{
		RFQs:  make([]dto.RFQResponse, len(rfqs)),
		Total: len(rfqs),
	}
	for i := range rfqs {
		response.RFQs[i] = rfqToDTO(&rfqs[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetRFQ возвращает одну заявку
// @Summary Заявка по ID
// @Tags RFQs
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} dto.RFQResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/rfqs/{id} [get]
func (h *APIHandler) GetRFQ(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заявки")
		return
	}

	rfq, err := h.Repository.GetRFQByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Заявка не найдена")
		return
	}

	c.JSON(http.StatusOK, rfqToDTO(rfq))
}

// UpdateRFQStatus меняет статус заявки
// @Summary Смена статуса заявки
// @Description Переводит заявку в любой известный статус, переходы не ограничены
// @Tags RFQs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Param request body dto.UpdateRequestStatusRequest true "Новый статус"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/rfqs/{id}/status [put]
func (h *APIHandler) UpdateRFQStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заявки")
		return
	}

	var request dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetRFQByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Заявка не найдена")
		return
	}

	if err := h.Repository.UpdateRFQStatus(id, ds.RequestStatus(request.Status)); err != nil {
		logrus.Error("Error updating RFQ status: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка смены статуса")
		return
	}

	if adminID, _, err := h.getUserFromContext(c); err == nil {
		logrus.Infof("RFQ %d status set to %s by user %d", id, request.Status, adminID)
	}

	h.successResponse(c, http.StatusOK, "статус обновлён", nil)
}

// ============ Кластерные запросы ============

// SubmitClusterRequest принимает запрос на кластер с публичной формы
// @Summary Отправка запроса на кластер
// @Description Создаёт структурированный запрос на multi-GPU развёртывание
// @Tags ClusterRequests
// @Accept json
// @Produce json
// @Param request body dto.SubmitClusterRequest true "Данные запроса"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cluster-requests [post]
func (h *APIHandler) SubmitClusterRequest(c *gin.Context) {
	var request dto.SubmitClusterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	req := ds.ClusterRequest{
		FirstName:           request.FirstName,
		LastName:            request.LastName,
		Email:               request.Email,
		Company:             request.Company,
		ClusterRequirements: request.ClusterRequirements,
		NumberOfGPUs:        request.NumberOfGPUs,
		RentalDuration:      request.RentalDuration,
		ProjectDescription:  request.ProjectDescription,
		HearAboutUs:         request.HearAboutUs,
		Status:              ds.RequestStatusPending,
	}

	if err := h.Repository.CreateClusterRequest(&req); err != nil {
		logrus.Error("Error creating cluster request: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения запроса")
		return
	}

	h.successResponse(c, http.StatusCreated, "запрос принят", clusterToDTO(&req))
}

// GetClusterRequests возвращает список запросов на кластер
// @Summary Список запросов на кластер
// @Tags ClusterRequests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу" Enums(pending, reviewing, quoted, accepted, rejected)
// @Success 200 {object} dto.ClusterRequestListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/cluster-requests [get]
func (h *APIHandler) GetClusterRequests(c *gin.Context) {
	status := ds.RequestStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		h.errorResponse(c, http.StatusBadRequest, "Неизвестный статус запроса")
		return
	}

	requests, err := h.Repository.GetClusterRequests(status)
	if err != nil {
		logrus.Error("Error getting cluster requests: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения запросов")
		return
	}

	response := dto.ClusterRequestListResponse{
		Requests: make([]dto.ClusterRequestResponse, len(requests)),
		Total:    len(requests),
	}
	for i := range requests {
		response.Requests[i] = clusterToDTO(&requests[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetClusterRequest возвращает один запрос на кластер
// @Summary Запрос на кластер по ID
// @Tags ClusterRequests
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID запроса"
// @Success 200 {object} dto.ClusterRequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cluster-requests/{id} [get]
func (h *APIHandler) GetClusterRequest(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID запроса")
		return
	}

	req, err := h.Repository.GetClusterRequestByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Запрос не найден")
		return
	}

	c.JSON(http.StatusOK, clusterToDTO(req))
}

// UpdateClusterRequestStatus меняет статус запроса на кластер
// @Summary Смена статуса запроса на кластер
// @Tags ClusterRequests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID запроса"
// @Param request body dto.UpdateRequestStatusRequest true "Новый статус"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cluster-requests/{id}/status [put]
func (h *APIHandler) UpdateClusterRequestStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID запроса")
		return
	}

	var request dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetClusterRequestByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Запрос не найден")
		return
	}

	if err := h.Repository.UpdateClusterRequestStatus(id, ds.RequestStatus(request.Status)); err != nil {
		logrus.Error("Error updating cluster request status: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка смены статуса")
		return
	}

	if adminID, _, err := h.getUserFromContext(c); err == nil {
		logrus.Infof("Cluster request %d status set to %s by user %d", id, request.Status, adminID)
	}

	h.successResponse(c, http.StatusOK, "статус обновлён", nil)
}

// ============ Преобразование в DTO ============

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}

func rfqToDTO(rfq *ds.RFQ) dto.RFQResponse {
	return dto.RFQResponse{
		ID:                     rfq.ID,
		Company:                rfq.Company,
		Email:                  rfq.Email,
		Phone:                  rfq.Phone,
		GPUType:                rfq.GPUType,
		Quantity:               rfq.Quantity,
		DurationMonths:         rfq.DurationMonths,
		UseCase:                rfq.UseCase,
		BudgetRange:            rfq.BudgetRange,
		AdditionalRequirements: rfq.AdditionalRequirements,
		Status:                 string(rfq.Status),
		CreatedAt:              rfq.CreatedAt,
	}
}

func clusterToDTO(req *ds.ClusterRequest) dto.ClusterRequestResponse {
	return dto.ClusterRequestResponse{
		ID:                  req.ID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Company:             req.Company,
		ClusterRequirements: req.ClusterRequirements,
		NumberOfGPUs:        req.NumberOfGPUs,
		RentalDuration:      req.RentalDuration,
		ProjectDescription:  req.ProjectDescription,
		HearAboutUs:         req.HearAboutUs,
		Status:              string(req.Status),
		CreatedAt:           req.CreatedAt,
	}
}
