package domain

const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

var (
	MessageSuccessCreatePaymentIntent = "payment intent created successfully"
	MessageSuccessPaymentNotification = "payment notification processed"
	MessageSuccessUpload              = "file uploaded successfully"

	MessageFailedCreatePaymentIntent = "payment processor error"
	MessageFailedPaymentNotification = "failed to process payment notification"
	MessageFailedUpload              = "failed to upload file"

	ErrPaymentProcessor      = NewError(ErrUpstream, "payment processor rejected the request")
	ErrPaymentIntentNotFound = NewError(ErrNotFound, "payment intent not found")
	ErrInvalidSignature      = NewError(ErrForbidden, "invalid notification signature")
	ErrFileTooLarge          = NewError(ErrValidation, "file must not be larger than 10MB")
	ErrFileTypeNotAllowed    = NewError(ErrValidation, "file type is not allowed")
	ErrStorageUnavailable    = NewError(ErrUpstream, "object storage is not configured")
)

type (
	CreatePaymentIntentRequest struct {
		Amount   float64 `json:"amount" validate:"required,min=1"`
		Currency string  `json:"currency" validate:"required,len=3,alpha"`
		OrderID  string  `json:"order_id" validate:"omitempty,uuid"`
	}

	PaymentIntentResponse struct {
		ClientSecret    string `json:"client_secret"`
		PaymentIntentID string `json:"payment_intent_id"`
		RedirectURL     string `json:"redirect_url,omitempty"`
	}

	MidtransNotificationRequest struct {
		OrderID           string `json:"order_id"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
		SignatureKey      string `json:"signature_key"`
		TransactionStatus string `json:"transaction_status"`
		TransactionID     string `json:"transaction_id"`
		FraudStatus       string `json:"fraud_status"`
	}

	UploadResponse struct {
		URL string `json:"url"`
	}
)
