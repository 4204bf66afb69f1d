package structs

// ViewUpdate changes only the fields that are set.
type ViewUpdate struct {
	Section      *string `json:"section"`
	Category     *string `json:"category"`
	AuthOpen     *bool   `json:"auth_open"`
	CheckoutOpen *bool   `json:"checkout_open"`
}
