package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/safe-response/safe-api/store"
)

// Task names shared between the API enqueuer and the worker.
const (
	TaskDeliverNotification = "deliver_notification"
	TaskExpireAlerts        = "expire_alerts"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// BackgroundManager is a struct for the SAFE background manager
type BackgroundManager struct {
	store store.SafeCore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      store.NewSafeStore(ormDB),
		taskServer: taskServer,
	}
}

// NewWithStore wires a manager onto an existing store, used by tests.
func NewWithStore(safeCore store.SafeCore, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      safeCore,
		taskServer: taskServer,
	}
}

// RegisterTasks registers every background task on the machinery server
func (m *BackgroundManager) RegisterTasks() error {
	if err := m.taskServer.RegisterTask(TaskDeliverNotification, m.DeliverNotification); err != nil {
		return err
	}
	return m.taskServer.RegisterTask(TaskExpireAlerts, m.ExpireAlertsTask)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("safe-worker", 5)
	return m.worker.Launch()
}
