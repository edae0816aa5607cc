package middleware

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-p2p-exchange/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

const (
	HeaderCaller    = "X-Caller"
	HeaderTimestamp = "X-Timestamp"
	HeaderSignature = "X-Signature"

	maxBodyBytes = 1 << 20
)

type (
	callerKey    struct{}
	signatureKey struct{}
)

// CallerFrom returns the authenticated caller stored by Authenticator.
func CallerFrom(ctx context.Context) (domain.Address, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Address)
	return caller, ok
}

func WithCaller(ctx context.Context, caller domain.Address) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// SignatureFrom returns the verified request signature.
func SignatureFrom(ctx context.Context) ([]byte, bool) {
	sig, ok := ctx.Value(signatureKey{}).([]byte)
	return sig, ok
}

// SigningPayload is the byte string a caller signs for one request.
func SigningPayload(method, path string, timestamp int64, body []byte) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n%s\n%d\n", method, path, timestamp)
	b.Write(body)
	return b.Bytes()
}

// Authenticator checks the ed25519 request signature. The caller address
// is the signer's public key.
type Authenticator struct {
	Window time.Duration
	Now    func() time.Time
	// Replays rejects a signature seen inside the window; nil disables it.
	Replays *ReplayCache
	// OnReject receives every rejected request; nil means drop silently.
	OnReject func(r *http.Request, err error)
}

var (
	errMissingHeaders = errors.New("missing authentication headers")
	errStale          = errors.New("timestamp outside the signature window")
	errBadSignature   = errors.New("signature does not verify")
	errReplayed       = errors.New("signature already used")
)

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, signature, err := a.verify(r)
		if err != nil {
			if a.OnReject != nil {
				a.OnReject(r, err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(response.ErrorResponse{
				Code:  uint32(domain.ErrUnauthorized.Code),
				Error: err.Error(),
			})
			return
		}
		ctx := context.WithValue(WithCaller(r.Context(), caller), signatureKey{}, signature)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authenticator) verify(r *http.Request) (domain.Address, []byte, error) {
	rawCaller := r.Header.Get(HeaderCaller)
	rawTimestamp := r.Header.Get(HeaderTimestamp)
	rawSignature := r.Header.Get(HeaderSignature)
	if rawCaller == "" || rawTimestamp == "" || rawSignature == "" {
		return domain.Address{}, nil, errMissingHeaders
	}

	caller, err := domain.ParseAddress(rawCaller)
	if err != nil {
		return domain.Address{}, nil, fmt.Errorf("caller: %w", err)
	}
	if caller.IsZero() {
		return domain.Address{}, nil, errors.New("zero caller")
	}
	timestamp, err := strconv.ParseInt(rawTimestamp, 10, 64)
	if err != nil {
		return domain.Address{}, nil, fmt.Errorf("timestamp: %w", err)
	}
	signature, err := hex.DecodeString(rawSignature)
	if err != nil || len(signature) != ed25519.SignatureSize {
		return domain.Address{}, nil, errBadSignature
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	skew := now().Sub(time.Unix(timestamp, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > a.Window {
		return domain.Address{}, nil, errStale
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return domain.Address{}, nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return domain.Address{}, nil, errors.New("body too large")
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	payload := SigningPayload(r.Method, r.URL.Path, timestamp, body)
	if !ed25519.Verify(ed25519.PublicKey(caller[:]), payload, signature) {
		return domain.Address{}, nil, errBadSignature
	}
	if a.Replays != nil && a.Replays.Seen(signature) {
		return domain.Address{}, nil, errReplayed
	}
	return caller, signature, nil
}

// Sign sets the authentication headers for a request signed by key.
func Sign(r *http.Request, key ed25519.PrivateKey, at time.Time, body []byte) {
	timestamp := at.Unix()
	pub := key.Public().(ed25519.PublicKey)
	sig := ed25519.Sign(key, SigningPayload(r.Method, r.URL.Path, timestamp, body))
	r.Header.Set(HeaderCaller, hex.EncodeToString(pub))
	r.Header.Set(HeaderTimestamp, strconv.FormatInt(timestamp, 10))
	r.Header.Set(HeaderSignature, hex.EncodeToString(sig))
}
