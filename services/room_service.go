package services

import (
	"fmt"
	"math"
	"time"

	"hoteldesk/constants"
	"hoteldesk/models"
	"hoteldesk/services/logger"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RoomService owns the room catalog: seeding, availability, status
// overrides and occupancy statistics.
type RoomService struct {
	db     *gorm.DB
	logger logger.Logger
}

type RoomServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	return &RoomService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// roomSeedPlan is the fixed first-run generation rule for the catalog.
type roomSeedPlan struct {
	roomType      int
	rate          float64
	floors        []int
	roomsPerFloor int
}

var defaultRoomPlan = []roomSeedPlan{
	{roomType: constants.RoomTypeStandard, rate: 2500, floors: []int{1, 2}, roomsPerFloor: 10},
	{roomType: constants.RoomTypeDeluxe, rate: 3500, floors: []int{3, 4}, roomsPerFloor: 8},
	{roomType: constants.RoomTypeSuite, rate: 5000, floors: []int{5}, roomsPerFloor: 6},
}

// AmenitiesForType returns the fixed amenity list for a room type
func AmenitiesForType(roomType int) []string {
	switch roomType {
	case constants.RoomTypeStandard:
		return []string{"AC", "TV", "WiFi", "Bathroom"}
	case constants.RoomTypeDeluxe:
		return []string{"AC", "TV", "WiFi", "Bathroom", "Minibar", "Balcony"}
	case constants.RoomTypeSuite:
		return []string{"AC", "TV", "WiFi", "Bathroom", "Minibar", "Balcony", "Living Room", "Room Service"}
	}
	return []string{}
}

// MaxOccupancyForType returns the fixed occupancy limit for a room type
func MaxOccupancyForType(roomType int) int {
	switch roomType {
	case constants.RoomTypeDeluxe:
		return 3
	case constants.RoomTypeSuite:
		return 4
	}
	return 2
}

// DefaultRateForType returns the nightly rate used by the seed plan
func DefaultRateForType(roomType int) float64 {
	for _, plan := range defaultRoomPlan {
		if plan.roomType == roomType {
			return plan.rate
		}
	}
	return 0
}

// generateDefaultRooms expands the seed plan into room records,
// numbering rooms <floor><NN>.
func generateDefaultRooms() []models.Room {
	var rooms []models.Room
	for _, plan := range defaultRoomPlan {
		for _, floor := range plan.floors {
			for i := 1; i <= plan.roomsPerFloor; i++ {
				rooms = append(rooms, models.Room{
					RoomNumber:   fmt.Sprintf("%d%02d", floor, i),
					Type:         plan.roomType,
					Rate:         plan.rate,
					Floor:        floor,
					Status:       constants.RoomStatusAvailable,
					Amenities:    pq.StringArray(AmenitiesForType(plan.roomType)),
					MaxOccupancy: MaxOccupancyForType(plan.roomType),
				})
			}
		}
	}
	return rooms
}

// SeedDefaultRooms creates the catalog on first run. A non-empty table
// is left alone.
func (s *RoomService) SeedDefaultRooms() error {
	var count int64
	if err := s.db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := generateDefaultRooms()
	if err := s.db.Create(&rooms).Error; err != nil {
		return err
	}
	s.logger.Info("seeded %d default rooms", len(rooms))
	return nil
}

// bookingBlocksRange reports whether a booking keeps its room occupied
// for any part of [start, end). Checked-out bookings never block, and
// the interval test is half-open so a stay ending exactly on the
// requested start date does not collide.
func bookingBlocksRange(b models.Booking, start, end time.Time) bool {
	if b.Status == constants.BookingStatusCheckedOut {
		return false
	}
	existingStart, err := time.Parse(constants.DateLayout, b.CheckInDate)
	if err != nil {
		return false
	}
	existingEnd, err := time.Parse(constants.DateLayout, b.EffectiveCheckOutDate())
	if err != nil {
		return false
	}
	return start.Before(existingEnd) && end.After(existingStart)
}

// filterAvailableRooms applies the availability rule over in-memory
// collections: not under maintenance, type match when requested, and no
// blocking booking for the room number.
func filterAvailableRooms(rooms []models.Room, bookings []models.Booking, start, end time.Time, roomType *int) []models.Room {
	occupied := make(map[string]bool)
	for _, b := range bookings {
		if b.RoomNumber == "" {
			continue
		}
		if bookingBlocksRange(b, start, end) {
			occupied[b.RoomNumber] = true
		}
	}

	available := make([]models.Room, 0)
	for _, room := range rooms {
		if room.Status == constants.RoomStatusMaintenance {
			continue
		}
		if roomType != nil && room.Type != *roomType {
			continue
		}
		if occupied[room.RoomNumber] {
			continue
		}
		available = append(available, room)
	}
	return available
}

// AvailableRooms lists rooms free for [checkIn, checkOut), optionally
// filtered by type. The check is advisory: nothing prevents a
// conflicting booking between this read and a later create.
func (s *RoomService) AvailableRooms(checkIn, checkOut string, roomType *int) ([]models.Room, error) {
	start, err := time.Parse(constants.DateLayout, checkIn)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(constants.DateLayout, checkOut)
	if err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := s.db.Where("status <> ?", constants.BookingStatusCheckedOut).Find(&bookings).Error; err != nil {
		return nil, err
	}

	return filterAvailableRooms(rooms, bookings, start, end, roomType), nil
}

// SetStatus overwrites a room's status. This is a trusted staff
// override and is not validated against current bookings.
func (s *RoomService) SetStatus(roomNumber string, status int) (*models.Room, error) {
	room := models.Room{Status: status}
	if err := room.ValidateStatus(); err != nil {
		return nil, err
	}

	var existing models.Room
	if err := s.db.Where("room_number = ?", roomNumber).First(&existing).Error; err != nil {
		return nil, err
	}

	existing.Status = status
	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// OccupancyStats summarises the catalog by the status field alone.
type OccupancyStats struct {
	Total         int     `json:"total"`
	Occupied      int     `json:"occupied"`
	Available     int     `json:"available"`
	Maintenance   int     `json:"maintenance"`
	Reserved      int     `json:"reserved"`
	OccupancyRate float64 `json:"occupancyRate"`
}

func computeOccupancy(rooms []models.Room) OccupancyStats {
	stats := OccupancyStats{Total: len(rooms)}
	for _, room := range rooms {
		switch room.Status {
		case constants.RoomStatusOccupied:
			stats.Occupied++
		case constants.RoomStatusAvailable:
			stats.Available++
		case constants.RoomStatusMaintenance:
			stats.Maintenance++
		case constants.RoomStatusReserved:
			stats.Reserved++
		}
	}
	if stats.Total > 0 {
		rate := float64(stats.Occupied) / float64(stats.Total) * 100
		stats.OccupancyRate = math.Round(rate*10) / 10
	}
	return stats
}

// Occupancy computes occupancy stats from the current catalog
func (s *RoomService) Occupancy() (OccupancyStats, error) {
	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return OccupancyStats{}, err
	}
	return computeOccupancy(rooms), nil
}

// All returns the full catalog ordered by room number
func (s *RoomService) All() ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.Order("room_number").Find(&rooms).Error
	return rooms, err
}

// ByNumber looks a room up by its unique number
func (s *RoomService) ByNumber(roomNumber string) (*models.Room, error) {
	var room models.Room
	if err := s.db.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// GroupedByType returns the catalog keyed by room type label
func (s *RoomService) GroupedByType() (map[string][]models.Room, error) {
	rooms, err := s.All()
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.Room)
	for _, room := range rooms {
		label := constants.RoomTypeLabel(room.Type)
		grouped[label] = append(grouped[label], room)
	}
	return grouped, nil
}

// Create adds a room to the catalog
func (s *RoomService) Create(room *models.Room) error {
	if room.Status == 0 {
		room.Status = constants.RoomStatusAvailable
	}
	if len(room.Amenities) == 0 {
		room.Amenities = pq.StringArray(AmenitiesForType(room.Type))
	}
	if room.MaxOccupancy == 0 {
		room.MaxOccupancy = MaxOccupancyForType(room.Type)
	}
	return s.db.Create(room).Error
}

// Update saves changed room fields
func (s *RoomService) Update(room *models.Room) error {
	return s.db.Save(room).Error
}

// Delete removes a room. Explicit admin action; bookings referencing
// the room number are left untouched.
func (s *RoomService) Delete(id uint) error {
	return s.db.Delete(&models.Room{}, id).Error
}

// SyncStatusFromBookings flips rooms to occupied when they have a
// checked-in booking covering today and back to available when they do
// not. Maintenance and reserved overrides are preserved. Run nightly.
func (s *RoomService) SyncStatusFromBookings(now time.Time) error {
	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return err
	}

	var active []models.Booking
	if err := s.db.Where("status = ?", constants.BookingStatusCheckedIn).Find(&active).Error; err != nil {
		return err
	}

	today := now.Format(constants.DateLayout)
	occupiedToday := make(map[string]bool)
	for _, b := range active {
		if b.RoomNumber != "" && b.CheckInDate <= today && today <= b.EffectiveCheckOutDate() {
			occupiedToday[b.RoomNumber] = true
		}
	}

	for _, room := range rooms {
		if room.Status == constants.RoomStatusMaintenance || room.Status == constants.RoomStatusReserved {
			continue
		}
		want := constants.RoomStatusAvailable
		if occupiedToday[room.RoomNumber] {
			want = constants.RoomStatusOccupied
		}
		if room.Status == want {
			continue
		}
		if err := s.db.Model(&models.Room{}).Where("id = ?", room.ID).Update("status", want).Error; err != nil {
			return err
		}
	}
	return nil
}
