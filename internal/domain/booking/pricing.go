package booking

// Charges applied on top of the room subtotal, in basis points.
const (
	VATBasisPoints           = 750
	ServiceChargeBasisPoints = 1000
)

const koboPerNaira = 100

// Quote prices a stay at a nightly rate given in whole naira.
func Quote(nightlyRateNaira int64, nights int) Pricing {
	rate := nightlyRateNaira * koboPerNaira
	subtotal := rate * int64(nights)
	vat := subtotal * VATBasisPoints / 10000
	service := subtotal * ServiceChargeBasisPoints / 10000

	return Pricing{
		NightlyRate:   rate,
		Nights:        nights,
		Subtotal:      subtotal,
		VAT:           vat,
		ServiceCharge: service,
		GrandTotal:    subtotal + vat + service,
	}
}
