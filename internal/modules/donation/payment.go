package donation

import (
	"fmt"

	"github.com/seva-foundation/core/internal/models"
)

// checkoutURL shapes the Razorpay checkout redirect for a recorded intent.
// Amount converts from whole rupees to paise. Actual payment processing
// happens entirely on the gateway side.
func checkoutURL(d *models.DonationModel) string {
	return fmt.Sprintf(
		"https://checkout.razorpay.com/v1/checkout.js?amount=%d&currency=INR&order_id=%s",
		d.Amount*100, d.ID,
	)
}
