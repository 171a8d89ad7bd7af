package booking

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

// Uploader stores one export object. Satisfied by *storage.S3Uploader.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

type ExportResult struct {
	Key  string `json:"key"`
	Rows int    `json:"rows"`
}

var exportHeader = []string{
	"id", "status", "apartment", "guest_name", "email", "phone", "guests",
	"check_in", "check_out", "nights", "grand_total", "created_at",
	"payment_date", "cancellation_date", "reason",
}

// ExportBookings writes the filtered booking list as CSV. It reads the
// store directly and never sweeps.
type ExportBookings struct {
	repo     domain.Repository
	uploader Uploader
	now      Clock
	log      *logrus.Logger
}

func NewExportBookings(
	repo domain.Repository,
	uploader Uploader,
	now Clock,
	log *logrus.Logger,
) *ExportBookings {
	return &ExportBookings{
		repo:     repo,
		uploader: uploader,
		now:      now,
		log:      log,
	}
}

func (uc *ExportBookings) Execute(ctx context.Context, f domain.Filter) (*ExportResult, error) {
	if uc.uploader == nil {
		return nil, httperr.ErrBusiness(httperr.CodeExportDisabled)
	}

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	rows := domain.ApplyFilter(all, f)

	body, err := EncodeCSV(rows)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/bookings-%s.csv", uc.now().UTC().Format("20060102T150405Z"))
	if err := uc.uploader.Upload(ctx, key, body, "text/csv"); err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"key":  key,
		"rows": len(rows),
	}).Info("bookings exported")

	return &ExportResult{Key: key, Rows: len(rows)}, nil
}

// EncodeCSV renders bookings with a header row. Amounts are naira with
// two decimals.
func EncodeCSV(bookings []domain.Booking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for i := range bookings {
		b := &bookings[i]
		if err := w.Write([]string{
			b.ID,
			string(b.Status),
			b.ApartmentName,
			b.Guest.FullName(),
			b.Guest.Email,
			b.Guest.Phone,
			strconv.Itoa(b.Guest.Count),
			csvDay(b.CheckIn),
			csvDay(b.CheckOut),
			strconv.Itoa(b.Pricing.Nights),
			fmt.Sprintf("%d.%02d", b.Pricing.GrandTotal/100, b.Pricing.GrandTotal%100),
			csvTime(&b.CreatedAt),
			csvTime(b.PaymentDate),
			csvTime(b.CancellationDate),
			b.Reason,
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return timezone.FormatDay(t)
}

func csvTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(timezone.Business()).Format(time.RFC3339)
}
