package controllers

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"hoteldesk/constants"
	"hoteldesk/dto"
	"hoteldesk/models"
	"hoteldesk/response"
	"hoteldesk/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const customersCacheKey = "customers:all"

type CustomerController struct {
	Customers  *services.CustomerService
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

func NewCustomerController(customers *services.CustomerService, redisCli *redis.Client, cld *cloudinary.Cloudinary) CustomerController {
	return CustomerController{
		Customers:  customers,
		Redis:      redisCli,
		Cloudinary: cld,
	}
}

func convertToCustomerResponse(customer models.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:            customer.ID,
		Name:          customer.Name,
		Email:         customer.Email,
		Phone:         customer.Phone,
		Address:       customer.Address,
		FirstVisit:    customer.FirstVisit.Format(constants.DateLayout),
		LastVisit:     customer.LastVisit.Format(constants.DateLayout),
		TotalBookings: customer.TotalBookings,
		TotalSpent:    customer.TotalSpent,
		LoyaltyPoints: customer.LoyaltyPoints,
		LoyaltyTier:   customer.LoyaltyTier,
		Discount:      services.DiscountForTier(customer.LoyaltyTier),
		PreferredRoom: customer.PreferredRoomType,
		Requests:      customer.SpecialRequests,
	}
}

func (cc CustomerController) invalidateCustomerCaches(ctx context.Context) {
	if err := services.DeleteKeysByPattern(ctx, cc.Redis, "customers:*"); err != nil {
		log.Printf("Error invalidating customer caches: %v", err)
	}
}

// normalizeInput strips accents and case for fuzzy matching
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity scores two strings on edit distance, 1.0 for
// identical.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

type scoredCustomer struct {
	customer models.Customer
	score    float64
}

// scoreCustomers ranks the directory against a free-form query. Exact
// phone/email substrings rank first, then fuzzy name matches.
func scoreCustomers(query string, customers []models.Customer, nameMatcher *closestmatch.ClosestMatch) []models.Customer {
	normalizedQuery := normalizeInput(query)
	closestName := nameMatcher.Closest(normalizedQuery)

	scored := make([]scoredCustomer, 0, len(customers))
	for _, customer := range customers {
		score := 0.0

		if strings.Contains(customer.Phone, query) {
			score += 3
		}
		if customer.Email != "" && strings.Contains(strings.ToLower(customer.Email), normalizedQuery) {
			score += 2
		}

		normalizedName := normalizeInput(customer.Name)
		if strings.Contains(normalizedName, normalizedQuery) {
			score += 2
		}
		if closestName != "" && normalizedName == closestName {
			score += 1
		}
		if similarity := calculateSimilarity(normalizedQuery, normalizedName); similarity > 0.6 {
			score += similarity
		}

		if score > 0 {
			scored = append(scored, scoredCustomer{customer: customer, score: score})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]models.Customer, 0, len(scored))
	for _, s := range scored {
		result = append(result, s.customer)
	}
	return result
}

// GetCustomers lists the directory with pagination from a cached
// snapshot.
func (cc CustomerController) GetCustomers(c *gin.Context) {
	ctx := context.Background()

	var allCustomers []models.Customer
	if err := services.GetFromRedis(ctx, cc.Redis, customersCacheKey, &allCustomers); err != nil || len(allCustomers) == 0 {
		var dbErr error
		allCustomers, dbErr = cc.Customers.All()
		if dbErr != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(ctx, cc.Redis, customersCacheKey, allCustomers, 10*time.Minute); err != nil {
			log.Printf("Error caching customers: %v", err)
		}
	}

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tierFilter := c.Query("tier")
	filtered := make([]models.Customer, 0, len(allCustomers))
	for _, customer := range allCustomers {
		if tierFilter != "" && customer.LoyaltyTier != tierFilter {
			continue
		}
		filtered = append(filtered, customer)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Customer{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	customerResponses := make([]dto.CustomerResponse, 0, len(filtered))
	for _, customer := range filtered {
		customerResponses = append(customerResponses, convertToCustomerResponse(customer))
	}

	response.SuccessWithPagination(c, customerResponses, page, limit, total)
}

// SearchCustomers runs the fuzzy directory search. Short queries fall
// back to plain substring matching in the DB.
func (cc CustomerController) SearchCustomers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Query is required")
		return
	}

	if len([]rune(query)) < 3 {
		customers, err := cc.Customers.Search(query)
		if err != nil {
			response.ServerError(c)
			return
		}
		customerResponses := make([]dto.CustomerResponse, 0, len(customers))
		for _, customer := range customers {
			customerResponses = append(customerResponses, convertToCustomerResponse(customer))
		}
		response.SuccessWithTotal(c, customerResponses, len(customerResponses))
		return
	}

	allCustomers, err := cc.Customers.All()
	if err != nil {
		response.ServerError(c)
		return
	}

	names := make([]string, 0, len(allCustomers))
	for _, customer := range allCustomers {
		names = append(names, normalizeInput(customer.Name))
	}
	nameMatcher := createMatcher(names)

	matched := scoreCustomers(query, allCustomers, nameMatcher)

	customerResponses := make([]dto.CustomerResponse, 0, len(matched))
	for _, customer := range matched {
		customerResponses = append(customerResponses, convertToCustomerResponse(customer))
	}

	response.SuccessWithTotal(c, customerResponses, len(customerResponses))
}

// GetCustomerDetail returns one directory entry
func (cc CustomerController) GetCustomerDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer id")
		return
	}

	customer, err := cc.Customers.ByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToCustomerResponse(*customer))
}

// LookupCustomer finds a returning guest by exact phone or email so the
// check-in form can prefill their details. Phone wins when both match.
func (cc CustomerController) LookupCustomer(c *gin.Context) {
	phone := c.Query("phone")
	email := c.Query("email")
	if phone == "" && email == "" {
		response.BadRequest(c, "phone or email is required")
		return
	}

	if phone != "" {
		customer, err := cc.Customers.ByPhone(phone)
		if err == nil {
			response.Success(c, convertToCustomerResponse(*customer))
			return
		}
		if err != gorm.ErrRecordNotFound {
			response.ServerError(c)
			return
		}
	}

	if email != "" {
		customer, err := cc.Customers.ByEmail(email)
		if err == nil {
			response.Success(c, convertToCustomerResponse(*customer))
			return
		}
		if err != gorm.ErrRecordNotFound {
			response.ServerError(c)
			return
		}
	}

	response.NotFound(c)
}

// GetTopCustomers lists the biggest spenders
func (cc CustomerController) GetTopCustomers(c *gin.Context) {
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	customers, err := cc.Customers.TopCustomers(limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	customerResponses := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		customerResponses = append(customerResponses, convertToCustomerResponse(customer))
	}

	response.SuccessWithTotal(c, customerResponses, len(customerResponses))
}

// GetCustomerStats summarises the directory for the dashboard
func (cc CustomerController) GetCustomerStats(c *gin.Context) {
	stats, err := cc.Customers.Stats()
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, stats)
}

// UpdateCustomerPreference records stay preferences
func (cc CustomerController) UpdateCustomerPreference(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer id")
		return
	}

	var req dto.CustomerPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer, err := cc.Customers.AddPreference(uint(id), req.PreferredRoomType, req.SpecialRequests)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	cc.invalidateCustomerCaches(context.Background())

	response.Success(c, convertToCustomerResponse(*customer))
}

// DeleteCustomer removes a directory entry
func (cc CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer id")
		return
	}

	if err := cc.Customers.Delete(uint(id)); err != nil {
		response.ServerError(c)
		return
	}

	cc.invalidateCustomerCaches(context.Background())

	response.Success(c, nil)
}

// UploadIDProof stores a scan of the guest's ID document
func (cc CustomerController) UploadIDProof(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Cannot open file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := cc.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "id-proofs"})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": resp.SecureURL})
}
