package admindto

import "github.com/LavaJover/shvark-p2p-exchange/internal/domain"

type InitializeAdminInput struct {
	Caller    domain.Address
	Signers   []domain.Address
	Threshold int
}

type UpdateAdminInput struct {
	// Nonce must equal the current admin nonce.
	Nonce        uint64
	Approvers    []domain.Address
	NewAuthority domain.Address
	NewSigners   []domain.Address
	NewThreshold int
}
