package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBill(t *testing.T) {
	tests := []struct {
		name              string
		rate              float64
		nights            int
		additionalCharges float64
		discount          float64
		wantBeforeTax     float64
		wantCGST          float64
		wantGrandTotal    float64
	}{
		{
			name:           "three night deluxe stay with extras",
			rate:           2500, nights: 3,
			additionalCharges: 500, discount: 200,
			wantBeforeTax:  7800,
			wantCGST:       468,
			wantGrandTotal: 8736,
		},
		{
			name:           "single night no extras",
			rate:           3500, nights: 1,
			wantBeforeTax:  3500,
			wantCGST:       210,
			wantGrandTotal: 3920,
		},
		{
			name:           "discount exceeding charges goes negative",
			rate:           1000, nights: 1,
			discount:       1500,
			wantBeforeTax:  -500,
			wantCGST:       -30,
			wantGrandTotal: -560,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := ComputeBill(tt.rate, tt.nights, tt.additionalCharges, tt.discount)

			assert.InDelta(t, tt.rate*float64(tt.nights), bill.RoomCharges, 1e-9)
			assert.InDelta(t, tt.wantBeforeTax, bill.TotalBeforeTax, 1e-9)
			assert.InDelta(t, tt.wantCGST, bill.CGST, 1e-9)
			assert.InDelta(t, bill.CGST, bill.SGST, 1e-9, "CGST and SGST are an even split")
			assert.InDelta(t, bill.CGST+bill.SGST, bill.TotalTax, 1e-9)
			assert.InDelta(t, tt.wantGrandTotal, bill.GrandTotal, 1e-9)
		})
	}
}

func TestComputeBillTaxRate(t *testing.T) {
	// Without extras the grand total is exactly 12% on top of the room
	// charges.
	bill := ComputeBill(2500, 3, 0, 0)
	assert.InDelta(t, 2500*3*1.12, bill.GrandTotal, 1e-9)
}
