package request

import "github.com/LavaJover/shvark-p2p-exchange/internal/domain"

type InitializeAdminRequest struct {
	Signers   []domain.Address `json:"signers"`
	Threshold int              `json:"threshold"`
}

// Approval - подпись одного подписанта над domain.UpdateApprovalMessage
type Approval struct {
	Signer    domain.Address `json:"signer"`
	Signature string         `json:"signature"`
}

type UpdateAdminRequest struct {
	Nonce        uint64           `json:"nonce"`
	NewAuthority domain.Address   `json:"new_authority"`
	NewSigners   []domain.Address `json:"new_signers"`
	NewThreshold int              `json:"new_threshold"`
	Approvals    []Approval       `json:"approvals"`
}
