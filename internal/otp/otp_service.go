package otp

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go-attendance/internal/bootstrap"
	"go-attendance/internal/notification"
	otperrors "go-attendance/internal/otp/errors"
	"go-attendance/internal/shared/clock"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	CodeLifetime = 10 * time.Minute
	// AbuseWindow and MaxEmailsPerDevice bound how many accounts one device
	// may request codes for.
	AbuseWindow        = 60 * time.Minute
	MaxEmailsPerDevice = 2
)

//go:generate mockgen -source=otp_service.go -destination=mock/otp_service_mock.go -package=mock
type Service interface {
	Request(ctx context.Context, req RequestOTPRequest) (RequestOTPResponse, error)
	Verify(ctx context.Context, req VerifyOTPRequest) (VerifyOTPResponse, error)
	Redeem(ctx context.Context, tx *sql.Tx, email, code, deviceIP, purpose string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier notification.Notifier
	clock    clock.Clock
	audit    bootstrap.AuditLogger
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	notifier notification.Notifier,
	clk clock.Clock,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("otp.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("otp.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{
		db:       db,
		repo:     repo,
		notifier: notifier,
		clock:    clk,
		audit:    audit,
		logger:   l,
	}
}

func (s *service) Request(ctx context.Context, req RequestOTPRequest) (RequestOTPResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	deviceIP := strings.TrimSpace(req.DeviceIP)

	exists, err := s.repo.UserExists(ctx, email)
	if err != nil {
		return RequestOTPResponse{}, err
	}
	if !exists {
		return RequestOTPResponse{}, otperrors.ErrUserNotFound
	}

	now := s.clock.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("request otp begin tx failed", zap.Error(err))
		return RequestOTPResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	recent, err := qtx.DistinctEmailsSince(ctx, deviceIP, now.Add(-AbuseWindow))
	if err != nil {
		return RequestOTPResponse{}, err
	}

	if tooManyEmails(recent, email) {
		log.Warn("otp request rejected as suspicious",
			zap.String("device_ip", deviceIP),
			zap.Int("recent_emails", len(recent)),
		)
		if s.audit != nil {
			s.audit.Log(ctx, bootstrap.AuditLog{
				Action:  "OTP_SUSPICIOUS_ACTIVITY",
				Message: "device requested OTPs for too many accounts",
				Meta: map[string]any{
					"device_ip": deviceIP,
					"email":     email,
					"recent":    recent,
				},
			})
		}
		return RequestOTPResponse{}, otperrors.ErrSuspiciousActivity
	}

	code, err := generateCode()
	if err != nil {
		return RequestOTPResponse{}, err
	}

	entry := &Entry{
		ID:        uuid.New(),
		Email:     email,
		DeviceIP:  deviceIP,
		Code:      code,
		ExpiresAt: now.Add(CodeLifetime),
		CreatedAt: now,
	}
	if err := qtx.Create(ctx, entry); err != nil {
		log.Error("request otp persist failed", zap.Error(err))
		return RequestOTPResponse{}, err
	}

	if s.notifier != nil {
		msg, err := notification.OTPCode(email, code, int(CodeLifetime/time.Minute))
		if err != nil {
			return RequestOTPResponse{}, err
		}
		if err := s.notifier.Queue(ctx, tx, msg); err != nil {
			log.Error("request otp queue mail failed", zap.Error(err))
			return RequestOTPResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("request otp commit failed", zap.Error(err))
		return RequestOTPResponse{}, err
	}

	log.Info("otp issued", zap.String("otp_id", entry.ID.String()), zap.String("device_ip", deviceIP))
	return RequestOTPResponse{ExpiresAt: entry.ExpiresAt.Format(time.RFC3339)}, nil
}

func (s *service) Verify(ctx context.Context, req VerifyOTPRequest) (VerifyOTPResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	now := s.clock.Now()

	entry, err := s.repo.FindVerifiable(ctx, email, strings.TrimSpace(req.OTPCode), strings.TrimSpace(req.DeviceIP), now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VerifyOTPResponse{}, otperrors.ErrInvalidOrExpired
		}
		return VerifyOTPResponse{}, err
	}

	ok, err := s.repo.MarkVerified(ctx, entry.ID, now)
	if err != nil {
		return VerifyOTPResponse{}, err
	}
	if !ok {
		return VerifyOTPResponse{}, otperrors.ErrInvalidOrExpired
	}

	return VerifyOTPResponse{Verified: true, ExpiresAt: entry.ExpiresAt.Format(time.RFC3339)}, nil
}

// Redeem spends a verified code on one clock action. It runs on tx so the
// code is only consumed if the attendance write commits.
func (s *service) Redeem(ctx context.Context, tx *sql.Tx, email, code, deviceIP, purpose string) error {
	if strings.TrimSpace(code) == "" {
		return otperrors.ErrOTPRequired
	}
	if purpose != PurposeClockIn && purpose != PurposeClockOut {
		return fmt.Errorf("unknown otp purpose %q", purpose)
	}

	repo := s.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	now := s.clock.Now()

	entry, err := repo.FindRedeemable(ctx, strings.ToLower(strings.TrimSpace(email)), strings.TrimSpace(code), strings.TrimSpace(deviceIP), now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return otperrors.ErrInvalidOTP
		}
		return err
	}

	ok, err := repo.MarkConsumed(ctx, entry.ID, purpose, now)
	if err != nil {
		return err
	}
	if !ok {
		return otperrors.ErrInvalidOTP
	}
	return nil
}

// tooManyEmails reports whether adding email to the device's recent set
// would exceed MaxEmailsPerDevice.
func tooManyEmails(recent []string, email string) bool {
	set := make(map[string]struct{}, len(recent)+1)
	for _, e := range recent {
		set[strings.ToLower(e)] = struct{}{}
	}
	set[email] = struct{}{}
	return len(set) > MaxEmailsPerDevice
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
