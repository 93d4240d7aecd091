package dto

import (
	"time"

	"backend/internal/app/quotecalc"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Аутентификация ============

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email"`
	FullName string `json:"full_name"`
	Company  string `json:"company"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Company  string `json:"company,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

// ============ RFQ ============

type SubmitRFQRequest struct {
	Company                string `json:"company" binding:"required,max=100"`
	Email                  string `json:"email" binding:"required,email"`
	Phone                  string `json:"phone"`
	GPUType                string `json:"gpu_type" binding:"required"`
	Quantity               int    `json:"quantity" binding:"required,gt=0"`
	DurationMonths         *int   `json:"duration_months" binding:"omitempty,gt=0"`
	UseCase                string `json:"use_case"`
	BudgetRange            string `json:"budget_range"`
	AdditionalRequirements string `json:"additional_requirements"`
}

type RFQResponse struct {
	ID                     uint      `json:"id"`
	Company                string    `json:"company"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone,omitempty"`
	GPUType                string    `json:"gpu_type"`
	Quantity               int       `json:"quantity"`
	DurationMonths         *int      `json:"duration_months,omitempty"`
	UseCase                string    `json:"use_case,omitempty"`
	BudgetRange            string    `json:"budget_range,omitempty"`
	AdditionalRequirements string    `json:"additional_requirements,omitempty"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"created_at"`
}

type RFQListResponse struct {
	RFQs  []RFQResponse `json:"rfqs"`
	Total int           `json:"total"`
}

// ============ Кластерные запросы ============

type SubmitClusterRequest struct {
	FirstName           string `json:"first_name" binding:"required,max=50"`
	LastName            string `json:"last_name" binding:"required,max=50"`
	Email               string `json:"email" binding:"required,email"`
	Company             string `json:"company" binding:"required,max=100"`
	ClusterRequirements string `json:"cluster_requirements" binding:"required"`
	NumberOfGPUs        string `json:"number_of_gpus"`
	RentalDuration      string `json:"rental_duration"`
	ProjectDescription  string `json:"project_description"`
	HearAboutUs         string `json:"hear_about_us"`
}

type ClusterRequestResponse struct {
	ID                  uint      `json:"id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Email               string    `json:"email"`
	Company             string    `json:"company"`
	ClusterRequirements string    `json:"cluster_requirements"`
	NumberOfGPUs        string    `json:"number_of_gpus,omitempty"`
	RentalDuration      string    `json:"rental_duration,omitempty"`
	ProjectDescription  string    `json:"project_description,omitempty"`
	HearAboutUs         string    `json:"hear_about_us,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

type ClusterRequestListResponse struct {
	Requests []ClusterRequestResponse `json:"requests"`
	Total    int                      `json:"total"`
}

// Смена статуса заявки (RFQ или кластерного запроса)
type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewing quoted accepted rejected"`
}

// ============ Коммерческие предложения ============

type CreateQuoteRequest struct {
	RFQID            *uint                `json:"rfq_id"`
	ClusterRequestID *uint                `json:"cluster_request_id"`
	Items            []quotecalc.LineItem `json:"items" binding:"required,min=1"`
	TaxRate          float64              `json:"tax_rate" binding:"gte=0,lte=100"`
	ValidDays        int                  `json:"valid_days" binding:"omitempty,gt=0"`
	PaymentTerms     string               `json:"payment_terms"`
	Notes            string               `json:"notes"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=sent viewed accepted expired rejected"`
}

type QuoteItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type QuoteResponse struct {
	ID               uint                `json:"id"`
	QuoteNumber      string              `json:"quote_number"`
	RFQID            *uint               `json:"rfq_id,omitempty"`
	ClusterRequestID *uint               `json:"cluster_request_id,omitempty"`
	Items            []QuoteItemResponse `json:"items"`
	Subtotal         float64             `json:"subtotal"`
	TaxRate          float64             `json:"tax_rate"`
	TaxAmount        float64             `json:"tax_amount"`
	Total            float64             `json:"total"`
	PaymentTerms     string              `json:"payment_terms,omitempty"`
	ValidUntil       *time.Time          `json:"valid_until,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	AcceptedAt       *time.Time          `json:"accepted_at,omitempty"`
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Total  int             `json:"total"`
}

// Предпросмотр итогов конструктора (без сохранения)
type QuotePreviewRequest struct {
	Items   []quotecalc.LineItem `json:"items" binding:"required"`
	TaxRate float64              `json:"tax_rate" binding:"gte=0,lte=100"`
}

// ============ Дашборд ============

// Список дашборда с изолированной ошибкой загрузки:
// падение одной выборки не валит остальные вкладки
type DashboardResponse struct {
	RFQs            []RFQResponse            `json:"rfqs"`
	RFQsError       string                   `json:"rfqs_error,omitempty"`
	ClusterRequests []ClusterRequestResponse `json:"cluster_requests"`
	ClustersError   string                   `json:"cluster_requests_error,omitempty"`
	Quotes          []QuoteResponse          `json:"quotes"`
	QuotesError     string                   `json:"quotes_error,omitempty"`
	Statistics      quotecalc.Statistics     `json:"statistics"`
}

// ============ Витрина ============

type HardwareStatResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type HardwareProductResponse struct {
	ID          uint                   `json:"id"`
	Category    string                 `json:"category"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	ImageURL    string                 `json:"image_url,omitempty"`
	Stats       []HardwareStatResponse `json:"stats"`
}

type HardwareStatRequest struct {
	Value string `json:"value" binding:"required,max=50"`
	Label string `json:"label" binding:"required,max=100"`
}

type CreateHardwareRequest struct {
	Category    string                `json:"category" binding:"required,max=100"`
	Name        string                `json:"name" binding:"required,max=100"`
	Description string                `json:"description"`
	Stats       []HardwareStatRequest `json:"stats"`
	Position    int                   `json:"position"`
}

type UpdateHardwareRequest struct {
	Category    string                 `json:"category" binding:"omitempty,max=100"`
	Name        string                 `json:"name" binding:"omitempty,max=100"`
	Description *string                `json:"description"`
	Stats       *[]HardwareStatRequest `json:"stats"`
	IsActive    *bool                  `json:"is_active"`
	Position    *int                   `json:"position"`
}

type PricingPlanResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	CTA         string   `json:"cta"`
	Popular     bool     `json:"popular"`
}

type PartnerResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	SiteURL string `json:"site_url,omitempty"`
}

type GalleryImageResponse struct {
	ID       uint   `json:"id"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text,omitempty"`
}

// ============ Оплата ============

type CheckoutItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	GPUType   string  `json:"gpu_type"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
	Recurring bool    `json:"recurring"`
}

type CreateCheckoutRequest struct {
	Items   []CheckoutItemRequest `json:"items" binding:"required,min=1"`
	QuoteID *uint                 `json:"quote_id"`
	Email   string                `json:"email" binding:"omitempty,email"`
}

type CheckoutResponse struct {
	OrderNumber string `json:"order_number"`
	SessionID   string `json:"session_id"`
	URL         string `json:"url"`
	Mode        string `json:"mode"`
}
