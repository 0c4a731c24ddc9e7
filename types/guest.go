package types

// Guest is an additional occupant registered on a booking beyond the
// primary customer.
type Guest struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	IDProofType   string `json:"idProofType"`
	IDProofNumber string `json:"idProofNumber"`
}
