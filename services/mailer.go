package services

import (
	"fmt"
	"net/smtp"

	"hoteldesk/config"
	"hoteldesk/constants"
	"hoteldesk/models"
)

// SendInvoiceEmail mails the GST invoice to the guest after checkout.
// Failures are the caller's to log; the checkout itself never depends
// on the mail going out.
func SendInvoiceEmail(booking *models.Booking) error {
	if booking.GuestEmail == "" {
		return nil
	}

	from := config.GetEnv("EMAIL_USER")
	password := config.GetEnv("EMAIL_PASS")
	if from == "" || password == "" {
		return fmt.Errorf("mailer not configured")
	}

	host := "smtp.gmail.com"
	port := "587"
	to := []string{booking.GuestEmail}
	subject := fmt.Sprintf("Subject: Invoice %s from %s\n", booking.InvoiceNumber, booking.HotelName)

	var paymentMethod string
	if booking.PaymentMethod != nil {
		switch *booking.PaymentMethod {
		case constants.PaymentMethodCash:
			paymentMethod = "Cash"
		case constants.PaymentMethodCard:
			paymentMethod = "Card"
		case constants.PaymentMethodUPI:
			paymentMethod = "UPI"
		}
	}

	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Invoice %s</title>
		</head>
		<body>
			<h2>%s</h2>
			<p>%s<br>%s | %s</p>
			<hr>
			<p>Dear %s,</p>
			<p>Thank you for staying with us. Your invoice for booking <strong>#%d</strong> is below.</p>
			<table border="0" cellpadding="4">
				<tr><td>Room</td><td>%s (%s)</td></tr>
				<tr><td>Stay</td><td>%s to %s (%d nights)</td></tr>
				<tr><td>Room charges</td><td>%.2f</td></tr>
				<tr><td>Additional charges</td><td>%.2f</td></tr>
				<tr><td>Discount</td><td>-%.2f</td></tr>
				<tr><td>Total before tax</td><td>%.2f</td></tr>
				<tr><td>CGST (6%%)</td><td>%.2f</td></tr>
				<tr><td>SGST (6%%)</td><td>%.2f</td></tr>
				<tr><td><strong>Grand total</strong></td><td><strong>%.2f</strong></td></tr>
				<tr><td>Payment</td><td>%s</td></tr>
			</table>
			<p>Invoice %s, issued %s.</p>
			<p>We hope to welcome you again,<br>%s</p>
		</body>
		</html>
	`,
		booking.InvoiceNumber,
		booking.HotelName,
		booking.HotelAddress, booking.HotelPhone, booking.HotelEmail,
		booking.GuestName,
		booking.BookingNumber,
		booking.RoomNumber, constants.RoomTypeLabel(booking.RoomType),
		booking.CheckInDate, booking.EffectiveCheckOutDate(), booking.Nights,
		booking.Bill.RoomCharges,
		booking.Bill.AdditionalCharges,
		booking.Bill.Discount,
		booking.Bill.TotalBeforeTax,
		booking.Bill.CGST,
		booking.Bill.SGST,
		booking.Bill.GrandTotal,
		paymentMethod,
		booking.InvoiceNumber, booking.InvoiceDate.Format(constants.DateLayout),
		booking.HotelName,
	)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
