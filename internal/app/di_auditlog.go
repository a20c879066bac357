package app

import (
	"context"
	"fmt"

	auditlogHTTP "github.com/allisson/formrelay/internal/auditlog/http"
	auditlogRepository "github.com/allisson/formrelay/internal/auditlog/repository"
	auditlogUseCase "github.com/allisson/formrelay/internal/auditlog/usecase"
)

// AuditLogRepository returns the audit log file repository.
func (c *Container) AuditLogRepository() auditlogUseCase.AuditLogRepository {
	c.auditLogRepoInit.Do(func() {
		c.auditLogRepository = auditlogRepository.NewFileAuditLogRepository(
			c.config.AuditLogFilePath,
			c.Logger(),
		)
	})
	return c.auditLogRepository
}

// AuditLogUseCase returns the audit log use case.
func (c *Container) AuditLogUseCase() (auditlogUseCase.AuditLogUseCase, error) {
	var err error
	c.auditLogUseCaseInit.Do(func() {
		c.auditLogUseCase, err = c.initAuditLogUseCase()
		if err != nil {
			c.initErrors["auditLogUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogUseCase"]; exists {
		return nil, storedErr
	}
	return c.auditLogUseCase, nil
}

// AuditLogHandler returns the admin audit log HTTP handler.
func (c *Container) AuditLogHandler() (*auditlogHTTP.AuditLogHandler, error) {
	var err error
	c.auditLogHandlerInit.Do(func() {
		c.auditLogHandler, err = c.initAuditLogHandler()
		if err != nil {
			c.initErrors["auditLogHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auditLogHandler"]; exists {
		return nil, storedErr
	}
	return c.auditLogHandler, nil
}

// initAuditLogUseCase creates the audit log use case wrapped with metrics.
func (c *Container) initAuditLogUseCase() (auditlogUseCase.AuditLogUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for audit log use case: %w", err)
	}

	useCase := auditlogUseCase.NewAuditLogUseCase(c.AuditLogRepository(), c.TextCipher())
	return auditlogUseCase.NewAuditLogUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initAuditLogHandler creates the admin audit log handler.
func (c *Container) initAuditLogHandler() (*auditlogHTTP.AuditLogHandler, error) {
	useCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for audit log handler: %w", err)
	}

	passphrase, err := c.EncryptionPassphrase(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get passphrase for audit log handler: %w", err)
	}

	return auditlogHTTP.NewAuditLogHandler(useCase, passphrase, c.Logger()), nil
}
