package app

import (
	"fmt"

	rotationUseCase "github.com/allisson/formrelay/internal/rotation/usecase"
)

// RotationUseCase returns the key rotation use case.
func (c *Container) RotationUseCase() (rotationUseCase.RotationUseCase, error) {
	var err error
	c.rotationUseCaseInit.Do(func() {
		c.rotationUseCase, err = c.initRotationUseCase()
		if err != nil {
			c.initErrors["rotationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["rotationUseCase"]; exists {
		return nil, storedErr
	}
	return c.rotationUseCase, nil
}

// initRotationUseCase creates the rotation use case wrapped with metrics.
func (c *Container) initRotationUseCase() (rotationUseCase.RotationUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for rotation use case: %w", err)
	}

	useCase := rotationUseCase.NewRotationUseCase(
		c.AuditLogRepository(),
		c.CredentialRepository(),
		c.TextCipher(),
		c.Logger(),
	)
	return rotationUseCase.NewRotationUseCaseWithMetrics(useCase, businessMetrics), nil
}
