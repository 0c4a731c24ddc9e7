package services

import (
	"hoteldesk/constants"
	"hoteldesk/models"
)

// ComputeBill produces the GST invoice breakdown for a stay.
//
// roomCharges = rate * nights; the 12% GST is split evenly into CGST and
// SGST on the total before tax. Inputs are taken at face value: callers
// are responsible for nights >= 1 and non-negative charges, and rounding
// happens only at display time.
func ComputeBill(rate float64, nights int, additionalCharges, discount float64) models.Bill {
	roomCharges := rate * float64(nights)
	totalBeforeTax := roomCharges + additionalCharges - discount

	cgst := totalBeforeTax * constants.CGSTRate
	sgst := totalBeforeTax * constants.SGSTRate
	totalTax := cgst + sgst

	return models.Bill{
		RoomCharges:       roomCharges,
		AdditionalCharges: additionalCharges,
		Discount:          discount,
		TotalBeforeTax:    totalBeforeTax,
		CGST:              cgst,
		SGST:              sgst,
		TotalTax:          totalTax,
		GrandTotal:        totalBeforeTax + totalTax,
	}
}
