package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"strings"

	"github.com/google/uuid"

	"github.com/jaykumar/jobportal-cli/internal/client/models"
	"github.com/jaykumar/jobportal-cli/internal/logging"
)

// requestIDHeader carries a per-request correlation id for log diagnostics.
const requestIDHeader = "X-Request-Id"

// HTTPClient is the concrete Client talking to the portal's REST API.
//
// A single cookie jar is shared by all calls so that the session cookie set
// by login is presented on subsequent session-mutating calls and protected
// reads. No request timeout is configured beyond the transport defaults;
// in-flight requests run to completion or failure.
type HTTPClient struct {
	userAPIURL    string
	companyAPIURL string
	hc            *http.Client
	log           logging.Logger
}

// NewHTTPClient constructs an HTTPClient for the given API base URLs.
func NewHTTPClient(userAPIURL, companyAPIURL string, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &HTTPClient{
		userAPIURL:    strings.TrimRight(userAPIURL, "/"),
		companyAPIURL: strings.TrimRight(companyAPIURL, "/"),
		hc:            &http.Client{Jar: jar},
		log:           log,
	}, nil
}

// Register submits the multipart registration payload.
//
// The five text fields are always present, including an empty role, which is
// transmitted as-is and rejected server-side rather than defaulted here.
// The file part is appended only when an attachment was supplied.
func (c *HTTPClient) Register(ctx context.Context, form models.RegisterForm, file *models.Attachment) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := []struct{ name, value string }{
		{"fullname", form.FullName},
		{"email", form.Email},
		{"phoneNumber", form.PhoneNumber},
		{"password", form.Password},
		{"role", string(form.Role)},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	if file != nil {
		part, err := createFilePart(mw, file)
		if err != nil {
			return "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return "", fmt.Errorf("write file part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.userAPIURL+"/register", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp statusResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &RejectionError{Message: resp.Message}
	}
	return resp.Message, nil
}

// Login authenticates with email, password and the selected role. The session
// cookie lands in the jar; the bearer token is returned for the caller to
// persist.
func (c *HTTPClient) Login(ctx context.Context, email, password string, role models.Role) (*LoginResult, error) {
	payload, err := json.Marshal(loginRequest{Email: email, Password: password, Role: role})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.userAPIURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp loginResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RejectionError{Message: resp.Message}
	}
	if resp.User == nil {
		return nil, fmt.Errorf("%w: login reply missing user", ErrMalformedResponse)
	}
	return &LoginResult{User: resp.User, Token: resp.Token, Message: resp.Message}, nil
}

// Logout terminates the cookie session. It sends no body and is idempotent
// from the client's perspective.
func (c *HTTPClient) Logout(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userAPIURL+"/logout", nil)
	if err != nil {
		return "", err
	}

	var resp statusResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &RejectionError{Message: resp.Message}
	}
	return resp.Message, nil
}

// Session asks the server who the cookie session belongs to.
func (c *HTTPClient) Session(ctx context.Context) (*models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userAPIURL+"/me", nil)
	if err != nil {
		return nil, err
	}

	var resp sessionResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RejectionError{Message: resp.Message}
	}
	if resp.User == nil {
		return nil, fmt.Errorf("%w: session reply missing user", ErrMalformedResponse)
	}
	return resp.User, nil
}

// Companies fetches the protected company listing. The bearer token is
// attached alongside the session cookies; both credentials are part of the
// server contract.
func (c *HTTPClient) Companies(ctx context.Context, token string) ([]models.Company, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.companyAPIURL+"/get", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var resp companiesResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RejectionError{Message: resp.Message}
	}
	return resp.Companies, nil
}

// do executes the request and decodes the JSON reply into out.
//
// Failure mapping: a transport error becomes ErrUnavailable and the response
// is never touched; an unreadable or undecodable body becomes
// ErrMalformedResponse. Non-2xx statuses are not special-cased here because
// the portal reports failures through the success flag in the body.
func (c *HTTPClient) do(req *http.Request, out any) error {
	id := uuid.NewString()
	req.Header.Set(requestIDHeader, id)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug(req.Context(), "transport failure", "url", req.URL.String(), "request_id", id, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func createFilePart(mw *multipart.Writer, file *models.Attachment) (io.Writer, error) {
	if file.ContentType == "" {
		return mw.CreateFormFile("file", file.Name)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	h.Set("Content-Type", file.ContentType)
	return mw.CreatePart(h)
}
