package domain

import (
	"fmt"
	"strings"
	"time"
)

// Admin is the protocol's singleton authority record.
type Admin struct {
	ID        Address
	Authority Address
	Signers   []Address
	Threshold int
	Nonce     uint64
	UpdatedAt time.Time
}

func (a *Admin) IsAuthority(caller Address) bool {
	return a.Authority == caller
}

func (a *Admin) IsSigner(caller Address) bool {
	for _, s := range a.Signers {
		if s == caller {
			return true
		}
	}
	return false
}

// HasQuorum reports whether approvers contain at least Threshold distinct
// current signers.
func (a *Admin) HasQuorum(approvers []Address) bool {
	seen := make(map[Address]struct{}, len(approvers))
	for _, ap := range approvers {
		if a.IsSigner(ap) {
			seen[ap] = struct{}{}
		}
	}
	return len(seen) >= a.Threshold
}

// ValidateSignerSet checks that signers are distinct, non-zero, contain the
// authority and that threshold fits the set.
func ValidateSignerSet(authority Address, signers []Address, threshold int) error {
	if len(signers) == 0 {
		return fmt.Errorf("empty signer set: %w", ErrInvalidAmount)
	}
	if threshold < 1 || threshold > len(signers) {
		return fmt.Errorf("threshold %d outside [1, %d]: %w", threshold, len(signers), ErrInvalidAmount)
	}
	seen := make(map[Address]struct{}, len(signers))
	for _, s := range signers {
		if s.IsZero() {
			return fmt.Errorf("zero signer: %w", ErrUnauthorized)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("duplicate signer %s: %w", s, ErrInvalidAmount)
		}
		seen[s] = struct{}{}
	}
	if _, ok := seen[authority]; !ok {
		return fmt.Errorf("authority %s is not a signer: %w", authority, ErrUnauthorized)
	}
	return nil
}

func (a *Admin) Clone() *Admin {
	c := *a
	c.Signers = append([]Address(nil), a.Signers...)
	return &c
}

// RateLimit holds the recent action timestamps of one (caller, action) key.
type RateLimit struct {
	Key    string
	Events []time.Time
}

func RateLimitKey(action string, caller Address) string {
	return action + ":" + caller.String()
}

// UpdateApprovalMessage is the byte string every approving signer signs for
// an admin update. The nonce binds the approval to one admin version.
func UpdateApprovalMessage(nonce uint64, newAuthority Address, newSigners []Address, newThreshold int) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "update_admin\n%d\n%s\n%d\n", nonce, newAuthority, newThreshold)
	for _, s := range newSigners {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
