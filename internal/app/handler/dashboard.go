package handler

import (
	"net/http"
	"sync"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/quotecalc"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetDashboard загружает все три вкладки админ-панели одним запросом.
// Выборки идут параллельно, ошибка одной не валит остальные:
// упавшая вкладка возвращается пустой с текстом ошибки.
// @Summary Данные админ-панели
// @Description Возвращает заявки, запросы на кластер, предложения и статистику одним ответом
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param rfq_status query string false "Фильтр заявок по статусу"
// @Param cluster_status query string false "Фильтр запросов по статусу"
// @Param quote_status query string false "Фильтр предложений по статусу"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/dashboard [get]
func (h *APIHandler) GetDashboard(c *gin.Context) {
	rfqStatus := ds.RequestStatus(c.Query("rfq_status"))
	clusterStatus := ds.RequestStatus(c.Query("cluster_status"))
	quoteStatus := ds.QuoteStatus(c.Query("quote_status"))

	if rfqStatus != "" && !rfqStatus.IsValid() {
		h.errorResponse(c, http.StatusBadRequest, "Неизвестный статус заявки")
		return
	}
	if clusterStatus != "" && !clusterStatus.IsValid() {
		h.errorResponse(c, http.StatusBadRequest, "Неизвестный статус запроса")
		return
	}
	if quoteStatus != "" && !quoteStatus.IsValid() {
		h.errorResponse(c, http.StatusBadRequest, "Неизвестный статус предложения")
		return
	}

	var (
		rfqs     []ds.RFQ
		clusters []ds.ClusterRequest
		quotes   []ds.Quote

		rfqErr     error
		clusterErr error
		quoteErr   error
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		rfqs, rfqErr = h.Repository.GetRFQs(rfqStatus)
	}()
	go func() {
		defer wg.Done()
		clusters, clusterErr = h.Repository.GetClusterRequests(clusterStatus)
	}()
	go func() {
		defer wg.Done()
		quotes, quoteErr = h.Repository.GetQuotes(quoteStatus)
	}()

	wg.Wait()

	response := dto.DashboardResponse{
		RFQs:            make([]dto.RFQResponse, 0, len(rfqs)),
		ClusterRequests: make([]dto.ClusterRequestResponse, 0, len(clusters)),
		Quotes:          make([]dto.QuoteResponse, 0, len(quotes)),
	}

	if rfqErr != nil {
		logrus.Error("Dashboard: error loading RFQs: ", rfqErr)
		response.RFQsError = "Ошибка загрузки заявок"
		rfqs = nil
	} else {
		for i := range rfqs {
			response.RFQs = append(response.RFQs, rfqToDTO(&rfqs[i]))
		}
	}

	if clusterErr != nil {
		logrus.Error("Dashboard: error loading cluster requests: ", clusterErr)
		response.ClustersError = "Ошибка загрузки запросов на кластер"
		clusters = nil
	} else {
		for i := range clusters {
			response.ClusterRequests = append(response.ClusterRequests, clusterToDTO(&clusters[i]))
		}
	}

	if quoteErr != nil {
		logrus.Error("Dashboard: error loading quotes: ", quoteErr)
		response.QuotesError = "Ошибка загрузки предложений"
		quotes = nil
	} else {
		for i := range quotes {
			response.Quotes = append(response.Quotes, quoteToDTO(&quotes[i]))
		}
	}

	// Статистика по тем спискам, что загрузились
	response.Statistics = quotecalc.ComputeStatistics(rfqs, clusters, quotes)

	c.JSON(http.StatusOK, response)
}

// GetStatistics возвращает агрегаты для вкладки статистики
// @Summary Статистика по заявкам и предложениям
// @Description Счётчики по статусам, выручка по принятым предложениям и конверсия
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} quotecalc.Statistics
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/statistics [get]
func (h *APIHandler) GetStatistics(c *gin.Context) {
	rfqs, err := h.Repository.GetRFQs("")
	if err != nil {
		logrus.Error("Statistics: error loading RFQs: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки заявок")
		return
	}

	clusters, err := h.Repository.GetClusterRequests("")
	if err != nil {
		logrus.Error("Statistics: error loading cluster requests: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки запросов")
		return
	}

	quotes, err := h.Repository.GetQuotes("")
	if err != nil {
		logrus.Error("Statistics: error loading quotes: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки предложений")
		return
	}

	c.JSON(http.StatusOK, quotecalc.ComputeStatistics(rfqs, clusters, quotes))
}
