package notify

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

const PaymentDateLayout = "January 2, 2006 at 03:04 PM"

var printer = message.NewPrinter(language.English)

// FormatNaira renders a kobo amount as ₦1,234.56.
func FormatNaira(kobo int64) string {
	return "₦" + printer.Sprint(number.Decimal(
		float64(kobo)/100,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatPaymentDate renders t in the business location, or "" for nil.
func FormatPaymentDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(timezone.Business()).Format(PaymentDateLayout)
}
