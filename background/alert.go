package background

// ExpireAlertsTask is a background job to expire active alerts whose expiry
// date has passed.
func (m *BackgroundManager) ExpireAlertsTask() error {
	return m.store.ExpireAlerts()
}
