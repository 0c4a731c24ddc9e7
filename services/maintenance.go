package services

import (
	"encoding/json"
	"time"

	"hoteldesk/services/logger"

	"github.com/olahol/melody"
)

// MaintenanceService is the nightly housekeeping run: it refreshes
// loyalty tiers from accumulated aggregates and reconciles room
// statuses against the booking ledger, then tells connected dashboards
// to refetch.
type MaintenanceService struct {
	rooms     *RoomService
	customers *CustomerService
	logger    logger.Logger
}

type MaintenanceServiceOptions struct {
	Rooms     *RoomService
	Customers *CustomerService
	Logger    logger.Logger
}

func NewMaintenanceService(opts MaintenanceServiceOptions) *MaintenanceService {
	return &MaintenanceService{
		rooms:     opts.Rooms,
		customers: opts.Customers,
		logger:    opts.Logger,
	}
}

// RunNightlyMaintenance implements the cron hook
func (s *MaintenanceService) RunNightlyMaintenance(now time.Time, m *melody.Melody) error {
	if err := s.customers.RecomputeAllTiers(); err != nil {
		return err
	}
	if err := s.rooms.SyncStatusFromBookings(now); err != nil {
		return err
	}

	if m != nil {
		msg, err := json.Marshal(map[string]interface{}{
			"event": "maintenance_completed",
			"at":    now.Format(time.RFC3339),
		})
		if err == nil {
			m.Broadcast(msg)
		}
	}

	s.logger.Info("nightly maintenance completed at %v", now)
	return nil
}
