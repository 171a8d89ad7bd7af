package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/models"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *domain.Booking,
) error {

	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	rec := toRecord(b)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *domain.Booking,
) error {

	rec := toRecord(b)
	res := r.db.WithContext(ctx).Save(&rec)
	if res.Error != nil {
		if httperr.IsExclusionConflict(res.Error) {
			return httperr.ErrBusiness(httperr.CodeDatesUnavailable)
		}
		return fmt.Errorf("update booking %s: %w", b.ID, res.Error)
	}
	return nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingGormRepository) Get(
	ctx context.Context,
	id string,
) (*domain.Booking, error) {

	var rec models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}

	return toDomain(&rec)
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
) ([]domain.Booking, error) {

	var recs []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return toDomainList(recs)
}

// ListConfirmed over-fetches every confirmed booking and sorts in memory,
// so the store needs no composite index on (status, checkin_date).
func (r *BookingGormRepository) ListConfirmed(
	ctx context.Context,
) ([]domain.Booking, error) {

	var recs []models.Booking
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.StatusConfirmed)).
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list confirmed bookings: %w", err)
	}

	out, err := toDomainList(recs)
	if err != nil {
		return nil, err
	}
	domain.SortByCheckIn(out)
	return out, nil
}

// --------------------------------------------------
// Locking
// --------------------------------------------------

// WithApartmentLock serialises writers per apartment with a transaction
// scoped advisory lock. Readers are not blocked.
func (r *BookingGormRepository) WithApartmentLock(
	ctx context.Context,
	apartmentID string,
	fn func(repo domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			apartmentID,
		).Error; err != nil {
			return fmt.Errorf("lock apartment %s: %w", apartmentID, err)
		}

		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

// calendarDay is the single place stored dates become domain days: the
// stored year/month/day is kept and pinned to midnight in the business
// location, whatever location the driver scanned it in.
func calendarDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, timezone.Business())
}

func toDomain(rec *models.Booking) (*domain.Booking, error) {
	status, err := domain.ParseStatus(rec.Status)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", rec.ID, err)
	}

	p := rec.Pricing.Data()

	return &domain.Booking{
		ID:            rec.ID,
		ApartmentID:   rec.ApartmentID,
		ApartmentName: rec.ApartmentName,
		UserID:        rec.UserID,
		Guest: domain.Guest{
			Title:     rec.UserTitle,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Email:     rec.UserEmail,
			Phone:     rec.UserPhone,
			Count:     rec.GuestNumber,
		},
		CheckIn:  calendarDay(rec.CheckinDate),
		CheckOut: calendarDay(rec.CheckoutDate),
		Status:   status,
		Pricing: domain.Pricing{
			NightlyRate:   p.NightlyRate,
			Nights:        p.Nights,
			Subtotal:      p.Subtotal,
			VAT:           p.VAT,
			ServiceCharge: p.ServiceCharge,
			GrandTotal:    p.GrandTotal,
		},
		Reason:           rec.Reason,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
		PaymentDate:      rec.PaymentDate,
		CancellationDate: rec.CancellationDate,
		ExtendedAt:       rec.ExtendedAt,
	}, nil
}

func toDomainList(recs []models.Booking) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(recs))
	for i := range recs {
		b, err := toDomain(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, nil
}

func toRecord(b *domain.Booking) models.Booking {
	return models.Booking{
		ID:            b.ID,
		ApartmentID:   b.ApartmentID,
		ApartmentName: b.ApartmentName,
		UserID:        b.UserID,
		UserTitle:     b.Guest.Title,
		FirstName:     b.Guest.FirstName,
		LastName:      b.Guest.LastName,
		UserEmail:     b.Guest.Email,
		UserPhone:     b.Guest.Phone,
		GuestNumber:   b.Guest.Count,
		CheckinDate:   b.CheckIn,
		CheckoutDate:  b.CheckOut,
		Status:        string(b.Status),
		Pricing: datatypes.NewJSONType(models.PricingSnapshot{
			NightlyRate:   b.Pricing.NightlyRate,
			Nights:        b.Pricing.Nights,
			Subtotal:      b.Pricing.Subtotal,
			VAT:           b.Pricing.VAT,
			ServiceCharge: b.Pricing.ServiceCharge,
			GrandTotal:    b.Pricing.GrandTotal,
		}),
		Reason:           b.Reason,
		PaymentDate:      b.PaymentDate,
		CancellationDate: b.CancellationDate,
		ExtendedAt:       b.ExtendedAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
