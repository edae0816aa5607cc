package mappers

import (
	"fmt"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

// addressParser collects the first parse error so mappers can decode a
// whole row before checking once.
type addressParser struct {
	err error
}

func (p *addressParser) parse(column, s string) domain.Address {
	if p.err != nil {
		return domain.Address{}
	}
	a, err := domain.ParseAddress(s)
	if err != nil {
		p.err = fmt.Errorf("column %s: %w", column, err)
	}
	return a
}

func (p *addressParser) parsePtr(column string, s *string) *domain.Address {
	if s == nil {
		return nil
	}
	a := p.parse(column, *s)
	return &a
}

func (p *addressParser) parseAll(column string, ss []string) []domain.Address {
	if len(ss) == 0 {
		return nil
	}
	out := make([]domain.Address, 0, len(ss))
	for _, s := range ss {
		out = append(out, p.parse(column, s))
	}
	return out
}

func addressPtr(a *domain.Address) *string {
	if a == nil {
		return nil
	}
	s := a.String()
	return &s
}

func addressStrings(as []domain.Address) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.String())
	}
	return out
}
