package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"intent-coordinator/internal/intent"
	"intent-coordinator/pkg/log"
	"intent-coordinator/pkg/response"
)

type mockUseCase struct {
	out   intent.ParseFreeTextOutput
	err   error
	input intent.ParseFreeTextInput
	calls int
}

func (m *mockUseCase) ParseFreeText(ctx context.Context, input intent.ParseFreeTextInput) (intent.ParseFreeTextOutput, error) {
	m.calls++
	m.input = input
	return m.out, m.err
}

func newTestRouter(uc intent.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/intent"), New(log.NewNop(), uc))
	return r
}

func doParse(r *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/intent/free-text?network=devnet", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %s: %v", w.Body.String(), err)
	}
	return resp
}

func TestParseFreeTextSuccess(t *testing.T) {
	uc := &mockUseCase{out: intent.ParseFreeTextOutput{
		Response: intent.ParsedIntentResponse{
			RawText: "swap 10 SUI to USDC",
			Parsed: intent.ParsedIntent{
				SellToken:    "0x2::sui::SUI",
				BuyToken:     "0xUSDC",
				SellAmount:   "10",
				MinBuyAmount: "29.7",
				ExpiresAtMs:  1700000900000,
			},
		},
		RateRemaining: 29,
	}}

	w := doParse(newTestRouter(uc), `{"text":"swap 10 SUI to USDC"}`, map[string]string{HeaderIdempotencyKey: " k1 "})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.input.Network != "devnet" || uc.input.IdempotencyKey != "k1" {
		t.Errorf("unexpected input: %+v", uc.input)
	}
	if uc.input.Text == nil || *uc.input.Text != "swap 10 SUI to USDC" {
		t.Errorf("unexpected text: %v", uc.input.Text)
	}
	if uc.input.CallerID == "" {
		t.Error("expected caller id from client ip")
	}
	if got := w.Header().Get(HeaderRateLimitRemaining); got != "29" {
		t.Errorf("expected remaining 29, got %q", got)
	}
	if got := w.Header().Get(HeaderIdempotentReplay); got != "" {
		t.Errorf("unexpected replay header %q", got)
	}

	var body struct {
		Data parseResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.Parsed.MinBuyAmount != "29.7" || body.Data.RawText != "swap 10 SUI to USDC" {
		t.Errorf("unexpected data: %+v", body.Data)
	}
}

func TestParseFreeTextReplayHeader(t *testing.T) {
	uc := &mockUseCase{out: intent.ParseFreeTextOutput{Replayed: true}}

	w := doParse(newTestRouter(uc), `{"text":"swap 10 SUI to USDC"}`, nil)

	if got := w.Header().Get(HeaderIdempotentReplay); got != "true" {
		t.Errorf("expected replay header, got %q", got)
	}
}

func TestParseFreeTextLenientText(t *testing.T) {
	tests := map[string]string{
		"empty body":   "",
		"missing text": `{}`,
		"number text":  `{"text":42}`,
		"null text":    `{"text":null}`,
		"object text":  `{"text":{"a":1}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{err: intent.ErrInvalidInput}
			w := doParse(newTestRouter(uc), body, nil)

			if uc.calls != 1 {
				t.Fatalf("expected use case call, got %d", uc.calls)
			}
			if uc.input.Text != nil {
				t.Errorf("expected nil text, got %q", *uc.input.Text)
			}
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestParseFreeTextMalformedJSON(t *testing.T) {
	uc := &mockUseCase{}
	w := doParse(newTestRouter(uc), `{"text":`, nil)

	if uc.calls != 0 {
		t.Errorf("use case should not run, got %d calls", uc.calls)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decodeResp(t, w); resp.Code != "INVALID_INPUT" {
		t.Errorf("unexpected code %q", resp.Code)
	}
}

func TestParseFreeTextErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"invalid input", intent.NewError(intent.KindInvalidInput, errors.New("too long")), 400, "INVALID_INPUT", "Invalid intent text."},
		{"unparseable", intent.NewError(intent.KindUnparseableIntent, errors.New("unsupported pair")), 422, "UNPARSEABLE_INTENT", "Unable to parse intent. Please rephrase."},
		{"conflict", intent.ErrIdempotencyKeyConflict, 409, "IDEMPOTENCY_KEY_CONFLICT", "Idempotency key conflict."},
		{"rate limited", intent.ErrRateLimited, 429, "RATE_LIMITED", "Too many requests."},
		{"parser unavailable", intent.NewError(intent.KindParserUnavailable, errors.New("dial tcp: secret-host")), 503, "PARSER_UNAVAILABLE", "Intent parsing service temporarily unavailable."},
		{"unclassified", errors.New("boom"), 503, "PARSER_UNAVAILABLE", "Intent parsing service temporarily unavailable."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doParse(newTestRouter(&mockUseCase{err: tt.err}), `{"text":"swap 10 SUI to USDC"}`, nil)

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			resp := decodeResp(t, w)
			if resp.Code != tt.code || resp.Message != tt.message {
				t.Errorf("unexpected body: %s", w.Body.String())
			}
			if strings.Contains(w.Body.String(), "secret-host") || strings.Contains(w.Body.String(), "boom") {
				t.Errorf("cause leaked: %s", w.Body.String())
			}
		})
	}
}
