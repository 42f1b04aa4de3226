package store

import (
	"github.com/jinzhu/gorm"

	"github.com/safe-response/safe-api/schema"
)

// SafeCore is the main datastore of the SAFE portal
type SafeCore interface {
	Ping() error

	// Users
	CreateUser(email, passwordHash, firstName, lastName, phoneNumber, role string) (*schema.User, error)
	GetUser(id int) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	TouchLastLogin(id int) error
	ListUsers() ([]schema.User, error)
	UpdateUserRole(id int, role string) error
	DeactivateUser(id int) error

	// Help requests
	CreateHelpRequest(request *schema.HelpRequest) error
	GetHelpRequest(id int) (*schema.HelpRequest, error)
	ListHelpRequests() ([]schema.HelpRequest, error)
	ListUserHelpRequests(userID int) ([]schema.HelpRequest, error)
	ListNearbyHelpRequests(latitude, longitude, radiusKM float64) ([]schema.HelpRequest, error)
	AssignHelpRequest(id, responderID, version int) error
	UpdateHelpRequestStatus(id int, status string, version int) error
	CancelHelpRequest(id int, notes string, version int) error

	// Donations
	CreateDonation(donation *schema.Donation) error
	ListDonations() ([]schema.Donation, error)
	ListUserDonations(userID int) ([]schema.Donation, error)
	UpdateDonationStatus(id int, status string) (*schema.Donation, error)

	// Notifications
	CreateNotification(notification *schema.Notification) error
	GetNotification(id int) (*schema.Notification, error)
	ListUserNotifications(userID int) ([]schema.Notification, error)
	ListPendingNotifications(limit int) ([]schema.Notification, error)
	MarkNotificationResult(id int, status string) error

	// Alerts
	CreateAlert(alert *schema.Alert) error
	ListActiveAlerts() ([]schema.Alert, error)
	ResolveAlert(id int) error
	ExpireAlerts() error
}

// SafeStore is an implementation of SafeCore
type SafeStore struct {
	ormDB *gorm.DB
}

func NewSafeStore(ormDB *gorm.DB) *SafeStore {
	return &SafeStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *SafeStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Migrate creates or updates the tables backing every entity.
func (s *SafeStore) Migrate() error {
	return s.ormDB.AutoMigrate(
		&schema.User{},
		&schema.HelpRequest{},
		&schema.Donation{},
		&schema.Notification{},
		&schema.Alert{},
	).Error
}
