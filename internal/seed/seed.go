// Package seed installs the demo fixtures a freshly provisioned instance
// needs to be usable: one administrator account and one welcome notice.
// It is gated behind SEED_DEMO_DATA and must never run against production
// databases.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"cybercorner/internal/repository"
	"cybercorner/internal/service"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@cybercorner.com"
	DefaultAdminPassword = "admin123"

	welcomeTitle   = "Welcome to CYBER CORNER"
	welcomeMessage = "Our digital service center is now online. Book your services easily!"
)

// Run is idempotent: it inserts the default admin only when no row with its
// email exists, and the welcome notice only into an empty notices table.
// Failures are logged and returned but do not stop the caller from serving.
func Run(ctx context.Context, admins repository.AdminRepository, notices repository.NoticeRepository) error {
	if err := seedAdmin(ctx, admins); err != nil {
		log.Printf("seed: admin: %v", err)
		return err
	}
	if err := seedWelcomeNotice(ctx, notices); err != nil {
		log.Printf("seed: notice: %v", err)
		return err
	}
	return nil
}

func seedAdmin(ctx context.Context, admins repository.AdminRepository) error {
	_, err := admins.FindByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := service.HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}
	_, err = admins.Create(ctx, DefaultAdminUsername, DefaultAdminEmail, hash)
	if errors.Is(err, repository.ErrUniqueViolation) {
		// Another instance won the race.
		return nil
	}
	return err
}

func seedWelcomeNotice(ctx context.Context, notices repository.NoticeRepository) error {
	existing, err := notices.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	_, err = notices.Create(ctx, welcomeTitle, welcomeMessage)
	return err
}
