package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
	auditlogUseCase "github.com/allisson/formrelay/internal/auditlog/usecase"
	credentialUseCase "github.com/allisson/formrelay/internal/credential/usecase"
	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
	relayService "github.com/allisson/formrelay/internal/relay/service"
)

// Config holds the relay settings that do not come from collaborators.
type Config struct {
	Passphrase     string
	WhatsappNumber string
}

type relayUseCase struct {
	credentialUseCase credentialUseCase.CredentialUseCase
	auditLogUseCase   auditlogUseCase.AuditLogUseCase
	deliveryClient    relayService.FormDeliveryClient
	cfg               Config
	logger            *slog.Logger
	now               func() time.Time
}

// Submit relays one contact form.
func (r *relayUseCase) Submit(
	ctx context.Context,
	requestID string,
	submission *relayDomain.Submission,
) (*relayDomain.SubmitResult, error) {
	accessKey, err := r.credentialUseCase.Reveal(ctx, r.cfg.Passphrase)
	if err != nil {
		return nil, err
	}

	result, err := r.deliveryClient.Deliver(ctx, accessKey, submission)
	if err != nil {
		record := auditlogDomain.NewRecord(auditlogDomain.TypeError, r.now(), requestID, nil)
		record.Error = err.Error()
		r.appendRecord(ctx, record)
		return nil, err
	}

	if !result.Success {
		message := result.Message
		if message == "" {
			message = relayDomain.UnknownDeliveryError
		}
		record := auditlogDomain.NewRecord(auditlogDomain.TypeError, r.now(), requestID, submission.Submitter())
		record.Error = message
		r.appendRecord(ctx, record)
		return nil, fmt.Errorf("%w: %s", relayDomain.ErrDeliveryRejected, message)
	}

	r.appendRecord(ctx, auditlogDomain.NewRecord(auditlogDomain.TypeSuccess, r.now(), requestID, submission.Submitter()))

	r.logger.Info("form submitted",
		slog.String("request_id", requestID),
		slog.String("service", submission.Service))

	return &relayDomain.SubmitResult{WhatsappNumber: r.whatsappNumber()}, nil
}

// appendRecord writes record to the audit log. A failure is logged and swallowed so
// the visitor's response never depends on the log.
func (r *relayUseCase) appendRecord(ctx context.Context, record *auditlogDomain.Record) {
	if err := r.auditLogUseCase.Append(ctx, record, r.cfg.Passphrase); err != nil {
		r.logger.Error("failed to write audit log record",
			slog.String("request_id", record.RequestID),
			slog.String("type", string(record.Type)),
			slog.Any("error", err))
	}
}

func (r *relayUseCase) whatsappNumber() string {
	if r.cfg.WhatsappNumber == "" {
		return relayDomain.DefaultWhatsappNumber
	}
	return r.cfg.WhatsappNumber
}

// NewRelayUseCase creates a new RelayUseCase.
func NewRelayUseCase(
	credentialUseCase credentialUseCase.CredentialUseCase,
	auditLogUseCase auditlogUseCase.AuditLogUseCase,
	deliveryClient relayService.FormDeliveryClient,
	cfg Config,
	logger *slog.Logger,
) RelayUseCase {
	return &relayUseCase{
		credentialUseCase: credentialUseCase,
		auditLogUseCase:   auditLogUseCase,
		deliveryClient:    deliveryClient,
		cfg:               cfg,
		logger:            logger,
		now:               time.Now,
	}
}
