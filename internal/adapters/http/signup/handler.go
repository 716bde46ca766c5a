package signup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"formvalidator/internal/adapters/http/response"
	"formvalidator/internal/core/domain/account"
	"formvalidator/internal/core/domain/signup"
	"formvalidator/internal/core/domain/validation"
	httpErrors "formvalidator/internal/platform/http"
	"formvalidator/internal/platform/logger"
	"formvalidator/internal/platform/validator"
)

const maxBodyBytes = 16 << 10

type Handler struct {
	manager  Manager
	validate validator.Validator
}

func NewHandler(manager Manager, validate validator.Validator) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
	}
}

// SignupRequest is the wire form of a signup submission. Missing keys decode
// to empty strings and are judged by the signup rules, so the tags only cap
// sizes. 72 bytes is the most bcrypt will hash.
type SignupRequest struct {
	Email           string `json:"email" validate:"max=254"`
	Password        string `json:"password1" validate:"maxbytes=72"`
	PasswordConfirm string `json:"password2" validate:"maxbytes=72"`
}

func (r SignupRequest) Form() signup.Form {
	return signup.Form{
		Email:           r.Email,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}

type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newAccountResponse(acc *account.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID,
		Email:     acc.Email,
		CreatedAt: acc.CreatedAt,
	}
}

func (h *Handler) mapDomainError(err error) error {
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		return httpErrors.NewNotFound("Account not found", err)
	default:
		return err
	}
}

// ValidateSignup answers with every field's messages without storing anything.
func (h *Handler) ValidateSignup(w http.ResponseWriter, r *http.Request) error {
	req, err := h.decode(w, r)
	if err != nil {
		return err
	}

	result, err := h.manager.Validate(r.Context(), req.Form())
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondValidation(w, result)
	return nil
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) error {
	req, err := h.decode(w, r)
	if err != nil {
		return err
	}

	acc, errs, err := h.manager.Register(r.Context(), req.Form())
	if err != nil {
		return h.mapDomainError(err)
	}
	if errs != nil {
		return httpErrors.NewUnprocessableEntity(errs)
	}

	response.RespondJSON(w, http.StatusCreated, newAccountResponse(acc))
	return nil
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) error {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		return httpErrors.NewBadRequest("invalid email in path", err)
	}

	acc, err := h.manager.GetAccount(r.Context(), email)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, newAccountResponse(acc))
	return nil
}

// decode reads a SignupRequest. An envelope rejected by the size caps comes
// back as a 400 carrying an ErrorMap over the signup fields.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (SignupRequest, error) {
	contextLogger := logger.FromContext(r.Context())

	var req SignupRequest

	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return req, httpErrors.NewUnsupportedMediaType("content type must be application/json", err)
		}
	}

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(&req)
	if err == nil {
		err = expectEOF(decoder)
	}
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return req, httpErrors.NewPayloadTooLarge("request body too large", err)
		}
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		return req, httpErrors.NewBadRequest("invalid request payload", err)
	}

	return req, h.checkEnvelope(r.Context(), req)
}

var errTrailingData = errors.New("unexpected data after the JSON object")

// expectEOF fails unless only whitespace follows the first JSON value.
func expectEOF(decoder *json.Decoder) error {
	var extra json.RawMessage
	switch err := decoder.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errTrailingData
	}
}

func (h *Handler) checkEnvelope(ctx context.Context, req SignupRequest) error {
	err := h.validate.Validate(req)
	if err == nil {
		return nil
	}

	contextLogger := logger.FromContext(ctx)

	var validationErr validator.ValidationError
	if !errors.As(err, &validationErr) {
		contextLogger.Error("Unexpected validation error", logger.Error(err))
		return httpErrors.NewBadRequest("invalid request data", err)
	}

	contextLogger.Warn("Signup envelope rejected", logger.Strings("fields", validationErr.Fields()))

	failures := make([]validation.SingleError, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		failures = append(failures, validation.SingleError{Field: fe.Field, Error: fe.Message})
	}
	errs, err := validation.Group(signup.Fields(), failures)
	if err != nil {
		return err
	}
	return httpErrors.NewFieldErrors(http.StatusBadRequest, errs)
}
