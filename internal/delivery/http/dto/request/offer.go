package request

type CreateOfferRequest struct {
	Amount        uint64 `json:"amount"`
	FiatAmount    uint64 `json:"fiat_amount"`
	FiatCurrency  string `json:"fiat_currency"`
	PaymentMethod string `json:"payment_method"`
	SellerBond    uint64 `json:"seller_bond"`
	// Nonce в hex; если пустой, генерируется сервером
	Nonce string `json:"nonce,omitempty"`
}

type AcceptOfferRequest struct {
	Bond uint64 `json:"bond"`
}
