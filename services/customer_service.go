package services

import (
	"math"
	"time"

	"hoteldesk/constants"
	"hoteldesk/models"
	"hoteldesk/services/logger"

	"gorm.io/gorm"
)

// CustomerService owns the guest directory and the loyalty program
// that hangs off it.
type CustomerService struct {
	db     *gorm.DB
	logger logger.Logger
}

type CustomerServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	return &CustomerService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// CalculateLoyaltyTier maps lifetime spend and booking count to a tier.
// Either threshold qualifies.
func CalculateLoyaltyTier(totalSpent float64, totalBookings int) string {
	switch {
	case totalSpent >= 50000 || totalBookings >= 20:
		return constants.TierPlatinum
	case totalSpent >= 25000 || totalBookings >= 10:
		return constants.TierGold
	case totalSpent >= 10000 || totalBookings >= 5:
		return constants.TierSilver
	}
	return constants.TierBronze
}

// DiscountForTier returns the tier's discount percentage
func DiscountForTier(tier string) float64 {
	switch tier {
	case constants.TierPlatinum:
		return 15
	case constants.TierGold:
		return 10
	case constants.TierSilver:
		return 5
	}
	return 0
}

// LoyaltyPointsForAmount converts a paid amount into points, 1 point
// per 100 spent, fractions dropped.
func LoyaltyPointsForAmount(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Floor(amount / 100))
}

// CustomerUpsertInput carries the guest details captured on a booking
// form together with the amount being attributed to the guest.
type CustomerUpsertInput struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	IDProofType   string
	IDProofNumber string
	Amount        float64
}

// findByContact matches an existing customer by exact phone first and
// falls back to exact email. Returns nil when neither matches.
func (s *CustomerService) findByContact(phone, email string) (*models.Customer, error) {
	var customer models.Customer
	if phone != "" {
		err := s.db.Where("phone = ?", phone).First(&customer).Error
		if err == nil {
			return &customer, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}
	if email != "" {
		err := s.db.Where("email = ?", email).First(&customer).Error
		if err == nil {
			return &customer, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}
	return nil, nil
}

// Upsert records a stay against the guest directory. An existing
// customer (matched by phone, then email) accrues the amount, a
// booking, loyalty points and a possible tier promotion; their contact
// details are overwritten with whatever the form carried. A first-time
// guest is created at Bronze regardless of the amount.
func (s *CustomerService) Upsert(input CustomerUpsertInput) (*models.Customer, error) {
	now := time.Now()

	existing, err := s.findByContact(input.Phone, input.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Name = input.Name
		existing.Email = input.Email
		existing.Phone = input.Phone
		if input.Address != "" {
			existing.Address = input.Address
		}
		if input.IDProofType != "" {
			existing.IDProofType = input.IDProofType
		}
		if input.IDProofNumber != "" {
			existing.IDProofNumber = input.IDProofNumber
		}
		existing.TotalBookings++
		existing.TotalSpent += input.Amount
		existing.LoyaltyPoints += LoyaltyPointsForAmount(input.Amount)
		existing.LastVisit = now
		existing.LoyaltyTier = CalculateLoyaltyTier(existing.TotalSpent, existing.TotalBookings)

		if err := s.db.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	customer := models.Customer{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		IDProofType:   input.IDProofType,
		IDProofNumber: input.IDProofNumber,
		FirstVisit:    now,
		LastVisit:     now,
		TotalBookings: 1,
		TotalSpent:    input.Amount,
		LoyaltyPoints: LoyaltyPointsForAmount(input.Amount),
		LoyaltyTier:   constants.TierBronze,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// DiscountForCustomer looks up the tier discount an existing guest is
// entitled to. A guest not yet in the directory gets 0.
func (s *CustomerService) DiscountForCustomer(phone, email string) (float64, string, error) {
	existing, err := s.findByContact(phone, email)
	if err != nil {
		return 0, "", err
	}
	if existing == nil {
		return 0, constants.TierBronze, nil
	}
	return DiscountForTier(existing.LoyaltyTier), existing.LoyaltyTier, nil
}

// RecomputeTier refreshes one customer's tier from their aggregates
func (s *CustomerService) RecomputeTier(id uint) error {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return err
	}
	tier := CalculateLoyaltyTier(customer.TotalSpent, customer.TotalBookings)
	if tier == customer.LoyaltyTier {
		return nil
	}
	return s.db.Model(&customer).Update("loyalty_tier", tier).Error
}

// RecomputeAllTiers refreshes every customer's tier. Run nightly to
// pick up threshold changes and repair drift.
func (s *CustomerService) RecomputeAllTiers() error {
	var customers []models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		return err
	}
	for _, customer := range customers {
		tier := CalculateLoyaltyTier(customer.TotalSpent, customer.TotalBookings)
		if tier == customer.LoyaltyTier {
			continue
		}
		if err := s.db.Model(&models.Customer{}).Where("id = ?", customer.ID).Update("loyalty_tier", tier).Error; err != nil {
			return err
		}
		s.logger.Info("customer %d promoted to %s", customer.ID, tier)
	}
	return nil
}

// Search finds customers by case-insensitive substring on name, phone
// or email.
func (s *CustomerService) Search(query string) ([]models.Customer, error) {
	var customers []models.Customer
	pattern := "%" + query + "%"
	err := s.db.
		Where("LOWER(name) LIKE LOWER(?) OR phone LIKE ? OR LOWER(email) LIKE LOWER(?)", pattern, pattern, pattern).
		Order("last_visit DESC").
		Find(&customers).Error
	return customers, err
}

// All lists the directory, most recent guests first
func (s *CustomerService) All() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Order("last_visit DESC").Find(&customers).Error
	return customers, err
}

// ByID fetches a single customer
func (s *CustomerService) ByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// ByPhone fetches a customer by exact phone
func (s *CustomerService) ByPhone(phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("phone = ?", phone).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// ByEmail fetches a customer by exact email
func (s *CustomerService) ByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// TopCustomers lists the biggest spenders
func (s *CustomerService) TopCustomers(limit int) ([]models.Customer, error) {
	if limit <= 0 {
		limit = 10
	}
	var customers []models.Customer
	err := s.db.Order("total_spent DESC").Limit(limit).Find(&customers).Error
	return customers, err
}

// CustomerStats summarises the directory for the dashboard.
type CustomerStats struct {
	Total      int            `json:"total"`
	ByTier     map[string]int `json:"byTier"`
	TotalSpent float64        `json:"totalSpent"`
	AvgSpent   float64        `json:"avgSpent"`
}

func computeCustomerStats(customers []models.Customer) CustomerStats {
	stats := CustomerStats{
		Total: len(customers),
		ByTier: map[string]int{
			constants.TierBronze:   0,
			constants.TierSilver:   0,
			constants.TierGold:     0,
			constants.TierPlatinum: 0,
		},
	}
	for _, customer := range customers {
		stats.ByTier[customer.LoyaltyTier]++
		stats.TotalSpent += customer.TotalSpent
	}
	if stats.Total > 0 {
		stats.AvgSpent = stats.TotalSpent / float64(stats.Total)
	}
	return stats
}

// Stats computes directory stats over all customers
func (s *CustomerService) Stats() (CustomerStats, error) {
	var customers []models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		return CustomerStats{}, err
	}
	return computeCustomerStats(customers), nil
}

// AddPreference records a preferred room type and free-form requests
func (s *CustomerService) AddPreference(id uint, preferredRoomType string, specialRequests []string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	if preferredRoomType != "" {
		customer.PreferredRoomType = preferredRoomType
	}
	for _, request := range specialRequests {
		if request != "" {
			customer.SpecialRequests = append(customer.SpecialRequests, request)
		}
	}
	if err := s.db.Save(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete removes a customer from the directory. Bookings keep their
// own copies of the guest details.
func (s *CustomerService) Delete(id uint) error {
	return s.db.Delete(&models.Customer{}, id).Error
}
