package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetHardwareProducts возвращает карточки оборудования для витрины
// @Summary Список оборудования
// @Description Возвращает активные карточки GPU-систем с характеристиками
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.HardwareProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/hardware [get]
func (h *APIHandler) GetHardwareProducts(c *gin.Context) {
	products, err := h.Repository.GetHardwareProducts()
	if err != nil {
		logrus.Error("Error getting hardware products: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения оборудования")
		return
	}

	response := make([]dto.HardwareProductResponse, len(products))
	for i := range products {
		response[i] = h.hardwareToDTO(c, &products[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetHardwareProduct возвращает одну карточку оборудования
// @Summary Оборудование по ID
// @Tags Catalog
// @Produce json
// @Param id path int true "ID оборудования"
// @Success 200 {object} dto.HardwareProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/hardware/{id} [get]
func (h *APIHandler) GetHardwareProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID оборудования")
		return
	}

	product, err := h.Repository.GetHardwareProductByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Оборудование не найдено")
		return
	}

	c.JSON(http.StatusOK, h.hardwareToDTO(c, product))
}

// CreateHardwareProduct создаёт карточку оборудования
// @Summary Создание карточки оборудования
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHardwareRequest true "Данные карточки"
// @Success 201 {object} dto.HardwareProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/hardware [post]
func (h *APIHandler) CreateHardwareProduct(c *gin.Context) {
	var request dto.CreateHardwareRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	product := ds.HardwareProduct{
		Category:    request.Category,
		Name:        request.Name,
		Description: request.Description,
		IsActive:    true,
		Position:    request.Position,
	}
	for i, stat := range request.Stats {
		product.Stats = append(product.Stats, ds.HardwareStat{
			Value:    stat.Value,
			Label:    stat.Label,
			Position: i,
		})
	}

	if err := h.Repository.CreateHardwareProduct(&product); err != nil {
		logrus.Error("Error creating hardware product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания карточки")
		return
	}

	c.JSON(http.StatusCreated, h.hardwareToDTO(c, &product))
}

// UpdateHardwareProduct обновляет карточку оборудования.
// Переданный список характеристик заменяет существующий целиком.
// @Summary Изменение карточки оборудования
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID оборудования"
// @Param request body dto.UpdateHardwareRequest true "Изменяемые поля"
// @Success 200 {object} dto.HardwareProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/hardware/{id} [put]
func (h *APIHandler) UpdateHardwareProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID оборудования")
		return
	}

	product, err := h.Repository.GetHardwareProductByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Оборудование не найдено")
		return
	}

	var request dto.UpdateHardwareRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if request.Category != "" {
		product.Category = request.Category
	}
	if request.Name != "" {
		product.Name = request.Name
	}
	if request.Description != nil {
		product.Description = *request.Description
	}
	if request.IsActive != nil {
		product.IsActive = *request.IsActive
	}
	if request.Position != nil {
		product.Position = *request.Position
	}

	replaceStats := request.Stats != nil
	if replaceStats {
		product.Stats = nil
		for i, stat := range *request.Stats {
			product.Stats = append(product.Stats, ds.HardwareStat{
				ProductID: product.ID,
				Value:     stat.Value,
				Label:     stat.Label,
				Position:  i,
			})
		}
	}

	if err := h.Repository.UpdateHardwareProduct(product, replaceStats); err != nil {
		logrus.Error("Error updating hardware product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка изменения карточки")
		return
	}

	c.JSON(http.StatusOK, h.hardwareToDTO(c, product))
}

// UploadHardwareImage загружает изображение карточки оборудования в MinIO
// @Summary Загрузка изображения оборудования
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID оборудования"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/hardware/{id}/image [post]
func (h *APIHandler) UploadHardwareImage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID оборудования")
		return
	}

	product, err := h.Repository.GetHardwareProductByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Оборудование не найдено")
		return
	}

	fileData, filename, err := readImageFile(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Не удалось прочитать файл изображения")
		return
	}

	objectKey, err := h.MinIOClient.UploadImage(c.Request.Context(), "hardware", fileData, filename)
	if err != nil {
		logrus.Error("Error uploading hardware image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	// Старое изображение удаляем после успешной загрузки нового
	if product.ImageKey != nil && *product.ImageKey != "" {
		if err := h.MinIOClient.DeleteImage(c.Request.Context(), *product.ImageKey); err != nil {
			logrus.Warn("Error deleting old hardware image: ", err)
		}
	}

	if err := h.Repository.SetHardwareImage(id, objectKey); err != nil {
		logrus.Error("Error saving hardware image key: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения изображения")
		return
	}

	h.successResponse(c, http.StatusOK, "изображение загружено", gin.H{"image_key": objectKey})
}

// GetPricingPlans возвращает тарифы
// @Summary Список тарифов
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.PricingPlanResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/pricing-plans [get]
func (h *APIHandler) GetPricingPlans(c *gin.Context) {
	plans, err := h.Repository.GetPricingPlans()
	if err != nil {
		logrus.Error("Error getting pricing plans: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения тарифов")
		return
	}

	response := make([]dto.PricingPlanResponse, len(plans))
	for i, plan := range plans {
		var features []string
		if len(plan.Features) > 0 {
			if err := json.Unmarshal(plan.Features, &features); err != nil {
				logrus.Warnf("Pricing plan %d: invalid features JSON: %v", plan.ID, err)
			}
		}

		response[i] = dto.PricingPlanResponse{
			ID:          plan.ID,
			Name:        plan.Name,
			Price:       plan.Price,
			Period:      plan.Period,
			Description: plan.Description,
			Features:    features,
			CTA:         plan.CTA,
			Popular:     plan.Popular,
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetPartners возвращает список партнёров
// @Summary Список партнёров
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.PartnerResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/partners [get]
func (h *APIHandler) GetPartners(c *gin.Context) {
	partners, err := h.Repository.GetPartners()
	if err != nil {
		logrus.Error("Error getting partners: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения партнёров")
		return
	}

	response := make([]dto.PartnerResponse, len(partners))
	for i, partner := range partners {
		var logoURL string
		if partner.LogoKey != nil && *partner.LogoKey != "" {
			url, err := h.MinIOClient.GetImageURL(c.Request.Context(), *partner.LogoKey)
			if err != nil {
				logrus.Warnf("Partner %d: presigned URL error: %v", partner.ID, err)
			} else {
				logoURL = url
			}
		}

		response[i] = dto.PartnerResponse{
			ID:      partner.ID,
			Name:    partner.Name,
			LogoURL: logoURL,
			SiteURL: partner.SiteURL,
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetGalleryImages возвращает галерею с временными URL из MinIO
// @Summary Галерея
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.GalleryImageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/gallery [get]
func (h *APIHandler) GetGalleryImages(c *gin.Context) {
	images, err := h.Repository.GetGalleryImages()
	if err != nil {
		logrus.Error("Error getting gallery images: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения галереи")
		return
	}

	response := make([]dto.GalleryImageResponse, len(images))
	for i, image := range images {
		url, err := h.MinIOClient.GetImageURL(c.Request.Context(), image.ImageKey)
		if err != nil {
			logrus.Warnf("Gallery image %d: presigned URL error: %v", image.ID, err)
		}

		response[i] = dto.GalleryImageResponse{
			ID:       image.ID,
			ImageURL: url,
			AltText:  image.AltText,
		}
	}

	c.JSON(http.StatusOK, response)
}

// UploadGalleryImage добавляет изображение в галерею
// @Summary Загрузка изображения галереи
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Файл изображения"
// @Param alt_text formData string false "Подпись"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/gallery [post]
func (h *APIHandler) UploadGalleryImage(c *gin.Context) {
	fileData, filename, err := readImageFile(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Не удалось прочитать файл изображения")
		return
	}

	objectKey, err := h.MinIOClient.UploadImage(c.Request.Context(), "gallery", fileData, filename)
	if err != nil {
		logrus.Error("Error uploading gallery image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	image := ds.GalleryImage{
		ImageKey: objectKey,
		AltText:  c.PostForm("alt_text"),
	}
	if err := h.Repository.CreateGalleryImage(&image); err != nil {
		logrus.Error("Error saving gallery image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения изображения")
		return
	}

	h.successResponse(c, http.StatusCreated, "изображение добавлено", gin.H{"id": image.ID, "image_key": objectKey})
}

// DeleteGalleryImage удаляет изображение галереи и объект в MinIO
// @Summary Удаление изображения галереи
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/gallery/{id} [delete]
func (h *APIHandler) DeleteGalleryImage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID изображения")
		return
	}

	image, err := h.Repository.GetGalleryImageByID(id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Изображение не найдено")
		return
	}

	if err := h.Repository.DeleteGalleryImage(id); err != nil {
		logrus.Error("Error deleting gallery image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления изображения")
		return
	}

	if err := h.MinIOClient.DeleteImage(c.Request.Context(), image.ImageKey); err != nil {
		logrus.Warn("Error deleting gallery object: ", err)
	}

	h.successResponse(c, http.StatusOK, "изображение удалено", nil)
}

// readImageFile читает файл из multipart-формы (поле image)
func readImageFile(c *gin.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return data, fileHeader.Filename, nil
}

func (h *APIHandler) hardwareToDTO(c *gin.Context, product *ds.HardwareProduct) dto.HardwareProductResponse {
	stats := make([]dto.HardwareStatResponse, len(product.Stats))
	for i, stat := range product.Stats {
		stats[i] = dto.HardwareStatResponse{Value: stat.Value, Label: stat.Label}
	}

	var imageURL string
	if product.ImageKey != nil && *product.ImageKey != "" {
		url, err := h.MinIOClient.GetImageURL(c.Request.Context(), *product.ImageKey)
		if err != nil {
			logrus.Warnf("Hardware product %d: presigned URL error: %v", product.ID, err)
		} else {
			imageURL = url
		}
	}

	return dto.HardwareProductResponse{
		ID:          product.ID,
		Category:    product.Category,
		Name:        product.Name,
		Description: product.Description,
		ImageURL:    imageURL,
		Stats:       stats,
	}
}
