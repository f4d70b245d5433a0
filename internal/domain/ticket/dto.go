package ticket

import "github.com/jornadahq/jornada-backend-go/internal/pkg/validator"

type CreateTicketRequest struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	ReceiptURL *string `json:"receipt_url"`
}

func (r *CreateTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !Category(r.Category).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of DIETAS, TRANSPORTE, ALOJAMIENTO",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectTicketRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectTicketRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TicketResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id,omitempty"`
	Email      *string `json:"email,omitempty"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	ReceiptURL *string `json:"receipt_url,omitempty"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
	CreatedAt  string  `json:"created_at"`
	ApprovedBy *string `json:"approved_by,omitempty"`
}
