package handlers_test

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/exchangetest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t       *testing.T
	h       *exchangetest.Harness
	handler http.Handler
}

func newClient(t *testing.T, dev bool) *client {
	h := exchangetest.New(t)
	return &client{t: t, h: h, handler: newRouter(h, dev)}
}

func newRouter(h *exchangetest.Harness, dev bool) http.Handler {
	return handlers.NewRouter(handlers.RouterDeps{
		Admin:           h.Admin,
		Offers:          h.Offers,
		Disputes:        h.Disputes,
		Reputation:      h.Reputation,
		Rewards:         h.Rewards,
		Store:           h.Store,
		Gatherer:        prometheus.NewRegistry(),
		SignatureWindow: 5 * time.Minute,
		Now:             h.Clock.Now,
		DevRoutes:       dev,
	})
}

type key struct {
	priv ed25519.PrivateKey
	addr domain.Address
}

func newKey(t *testing.T) key {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	var a domain.Address
	copy(a[:], pub)
	return key{priv: priv, addr: a}
}

func (c *client) do(method, path string, signer *key, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(c.t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	if signer != nil {
		middleware.Sign(req, signer.priv, c.h.Clock.Now(), raw)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (c *client) deposit(k key, amount uint64) {
	c.t.Helper()
	rec := c.do(http.MethodPost, "/ledger/deposit", &k, request.DepositRequest{Amount: amount})
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
}

func (c *client) balance(owner domain.Address) uint64 {
	c.t.Helper()
	rec := c.do(http.MethodGet, "/ledger/BASE/"+owner.String(), nil, nil)
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[response.BalanceResponse](c.t, rec).Balance
}

func TestRouter_TradeLifecycle(t *testing.T) {
	c := newClient(t, true)
	seller, buyer := newKey(t), newKey(t)
	c.deposit(seller, 1_000_000)
	c.deposit(buyer, 10_000)

	rec := c.do(http.MethodPost, "/offers", &seller, request.CreateOfferRequest{
		Amount:        1_000_000,
		FiatAmount:    50_000,
		FiatCurrency:  "USD",
		PaymentMethod: "Bank transfer",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[response.OfferResponse](t, rec)
	assert.Equal(t, domain.StatusCreated, created.Status)
	assert.Equal(t, "0.05", created.UnitPrice)
	offerPath := "/offers/" + created.ID.String()

	rec = c.do(http.MethodPost, offerPath+"/list", &seller, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = c.do(http.MethodPost, offerPath+"/accept", &buyer, request.AcceptOfferRequest{Bond: 10_000})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = c.do(http.MethodGet, offerPath+"/escrow", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(1_010_000), decodeBody[response.EscrowResponse](t, rec).Balance)

	rec = c.do(http.MethodPost, offerPath+"/confirm-payment", &buyer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// only the seller may release
	rec = c.do(http.MethodPost, offerPath+"/release", &buyer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, uint32(6002), decodeBody[response.ErrorResponse](t, rec).Code)

	rec = c.do(http.MethodPost, offerPath+"/release", &seller, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.StatusCompleted, decodeBody[response.OfferResponse](t, rec).Status)

	assert.Equal(t, uint64(1_010_000), c.balance(buyer.addr))
	assert.Equal(t, uint64(0), c.balance(seller.addr))

	rec = c.do(http.MethodGet, "/offers?seller="+seller.addr.String(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[response.ListOffersResponse](t, rec)
	require.Len(t, list.Offers, 1)
	assert.Equal(t, int32(1), list.Pagination.TotalItems)

	rec = c.do(http.MethodGet, "/reputation/"+buyer.addr.String(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint32(1), decodeBody[response.ReputationResponse](t, rec).SuccessfulTrades)
}

func TestRouter_Authentication(t *testing.T) {
	c := newClient(t, true)
	k := newKey(t)
	body := []byte(`{"amount":5}`)

	req := httptest.NewRequest(http.MethodPost, "/ledger/deposit", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// signature over a different body
	req = httptest.NewRequest(http.MethodPost, "/ledger/deposit", bytes.NewReader([]byte(`{"amount":500}`)))
	middleware.Sign(req, k.priv, c.h.Clock.Now(), body)
	rec = httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// stale timestamp
	req = httptest.NewRequest(http.MethodPost, "/ledger/deposit", bytes.NewReader(body))
	middleware.Sign(req, k.priv, c.h.Clock.Now().Add(-6*time.Minute), body)
	rec = httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, uint32(6002), decodeBody[response.ErrorResponse](t, rec).Code)

	req = httptest.NewRequest(http.MethodPost, "/ledger/deposit", bytes.NewReader(body))
	middleware.Sign(req, k.priv, c.h.Clock.Now().Add(-4*time.Minute), body)
	rec = httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, uint64(5), c.balance(k.addr))
}

func TestRouter_ErrorMapping(t *testing.T) {
	c := newClient(t, false)
	var missing domain.Address
	missing[0] = 1

	rec := c.do(http.MethodGet, "/offers/"+missing.String(), nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, uint32(6100), decodeBody[response.ErrorResponse](t, rec).Code)

	rec = c.do(http.MethodGet, "/offers/not-hex", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	k := newKey(t)
	rec = c.do(http.MethodPost, "/offers", &k, request.CreateOfferRequest{
		Amount: 1, FiatAmount: 1, FiatCurrency: "usd", PaymentMethod: "cash",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, uint32(6019), decodeBody[response.ErrorResponse](t, rec).Code)

	rec = c.do(http.MethodPost, "/offers", &k, request.CreateOfferRequest{
		Amount: 1, FiatAmount: 1, FiatCurrency: "USD", PaymentMethod: "cash",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// dev route is not mounted
	rec = c.do(http.MethodPost, "/ledger/deposit", &k, request.DepositRequest{Amount: 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// resend serves a copy of req with the same headers and body.
func resend(handler http.Handler, req *http.Request, body []byte) *httptest.ResponseRecorder {
	again := httptest.NewRequest(req.Method, req.URL.Path, bytes.NewReader(body))
	again.Header = req.Header.Clone()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, again)
	return rec
}

func TestRouter_ResentSignedRequestIsRejected(t *testing.T) {
	c := newClient(t, true)
	seller := newKey(t)
	c.deposit(seller, 3_000_000)

	body, err := json.Marshal(request.CreateOfferRequest{
		Amount:        1_000_000,
		FiatAmount:    50_000,
		FiatCurrency:  "USD",
		PaymentMethod: "Bank transfer",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/offers", bytes.NewReader(body))
	middleware.Sign(req, seller.priv, c.h.Clock.Now(), body)

	rec := resend(c.handler, req, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	for i := 0; i < 3; i++ {
		rec = resend(c.handler, req, body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, uint32(6002), decodeBody[response.ErrorResponse](t, rec).Code)
	}
	assert.Equal(t, uint64(2_000_000), c.balance(seller.addr))

	// another replica without the cached signature derives the same offer
	other := newRouter(c.h, true)
	rec = resend(other, req, body)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	assert.Equal(t, uint32(6101), decodeBody[response.ErrorResponse](t, rec).Code)
	assert.Equal(t, uint64(2_000_000), c.balance(seller.addr))

	rec = c.do(http.MethodGet, "/offers?seller="+seller.addr.String(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[response.ListOffersResponse](t, rec).Offers, 1)
}

func approve(k key, req request.UpdateAdminRequest) request.Approval {
	msg := domain.UpdateApprovalMessage(req.Nonce, req.NewAuthority, req.NewSigners, req.NewThreshold)
	return request.Approval{Signer: k.addr, Signature: hex.EncodeToString(ed25519.Sign(k.priv, msg))}
}

func TestRouter_AdminMultisig(t *testing.T) {
	c := newClient(t, false)
	authority, second, next := newKey(t), newKey(t), newKey(t)

	rec := c.do(http.MethodPost, "/admin/init", &authority, request.InitializeAdminRequest{
		Signers:   []domain.Address{authority.addr, second.addr},
		Threshold: 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	update := request.UpdateAdminRequest{
		Nonce:        0,
		NewAuthority: next.addr,
		NewSigners:   []domain.Address{next.addr},
		NewThreshold: 1,
	}

	update.Approvals = []request.Approval{approve(authority, update)}
	rec = c.do(http.MethodPost, "/admin/update", &authority, update)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	forged := approve(second, update)
	forged.Signer = next.addr
	update.Approvals = []request.Approval{approve(authority, update), forged}
	rec = c.do(http.MethodPost, "/admin/update", &authority, update)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	update.Approvals = []request.Approval{approve(authority, update), approve(second, update)}
	rec = c.do(http.MethodPost, "/admin/update", &second, update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeBody[response.AdminResponse](t, rec)
	assert.Equal(t, next.addr, got.Authority)
	assert.Equal(t, uint64(1), got.Nonce)

	rec = c.do(http.MethodGet, "/admin", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, next.addr, decodeBody[response.AdminResponse](t, rec).Authority)
}

func TestVerifyApprovals_Malformed(t *testing.T) {
	k := newKey(t)
	_, err := handlers.VerifyApprovals(request.UpdateAdminRequest{
		Approvals: []request.Approval{{Signer: k.addr, Signature: "zz"}},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, handlers.StatusOf(domain.ErrTooManyRequests))
	assert.Equal(t, http.StatusConflict, handlers.StatusOf(domain.ErrAlreadyVoted))
	assert.Equal(t, http.StatusInternalServerError, handlers.StatusOf(assert.AnError))
}
