package httpapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Gedeon250/football-api-app/internal/platform/logging"
	"github.com/Gedeon250/football-api-app/internal/usecase"
)

type Handler struct {
	provider  usecase.HomeDataProvider
	home      *usecase.HomeService
	reference *usecase.ReferenceService
	pages     *pageRenderer
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	provider usecase.HomeDataProvider,
	home *usecase.HomeService,
	reference *usecase.ReferenceService,
	logger *logging.Logger,
) (*Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}

	pages, err := newPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("load page templates: %w", err)
	}

	return &Handler{
		provider:  provider,
		home:      home,
		reference: reference,
		pages:     pages,
		logger:    logger,
		validator: validator.New(),
	}, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// invalidFields lists the struct fields that failed validation.
func invalidFields(err error) map[string]struct{} {
	out := make(map[string]struct{})
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			out[fieldErr.StructField()] = struct{}{}
		}
	}
	return out
}
