package worker

import (
	"go.uber.org/zap"

	"github.com/edupanel/center-service/internal/service"
)

// StartNotificationWorker subscribes the notification service to the
// employee and payment events it reacts to.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	if logger != nil {
		logger.Info("notification worker started")
	}
}
