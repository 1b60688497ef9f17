package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
)

// NotifierService fans out a notification row to every admin user. Email
// delivery is best-effort: a failed send is logged, never surfaced.
type NotifierService struct {
	notificationRepo repositories.NotificationRepositoryImpl
	userRepo         repositories.UserRepositoryImpl
	mailer           *Mailer
}

func NewNotifierService(
	notificationRepo repositories.NotificationRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	mailer *Mailer,
) *NotifierService {
	return &NotifierService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
	}
}

func (s *NotifierService) NotifyAllAdmins(ctx context.Context, title, message, severity, entityType, entityID string, metadata map[string]string) error {
	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		log.Printf("NotifyAllAdmins: no admin users to notify for %q", title)
		return nil
	}

	notifications := make([]models.AdminNotification, 0, len(admins))
	for _, admin := range admins {
		notifications = append(notifications, models.AdminNotification{
			ID:         uuid.New().String(),
			UserID:     admin.ID,
			Title:      title,
			Message:    message,
			Severity:   severity,
			EntityType: entityType,
			EntityID:   entityID,
			Metadata:   models.AttributeMap(metadata),
		})
	}
	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return err
	}

	if s.mailer != nil {
		body := BuildNotificationEmailBody(title, message)
		for _, admin := range admins {
			if mailErr := s.mailer.SendHTMLEmail(admin.Email, title, body); mailErr != nil {
				log.Printf("NotifyAllAdmins: email to %s failed: %v", admin.Email, mailErr)
			}
		}
	}

	return nil
}
