package app

import (
	"fmt"

	credentialRepository "github.com/allisson/formrelay/internal/credential/repository"
	credentialUseCase "github.com/allisson/formrelay/internal/credential/usecase"
)

// CredentialRepository returns the credential file repository.
func (c *Container) CredentialRepository() credentialUseCase.CredentialRepository {
	c.credentialRepoInit.Do(func() {
		c.credentialRepository = credentialRepository.NewFileCredentialRepository(
			c.config.CredentialFilePath,
			c.Logger(),
		)
	})
	return c.credentialRepository
}

// CredentialUseCase returns the credential use case.
func (c *Container) CredentialUseCase() (credentialUseCase.CredentialUseCase, error) {
	var err error
	c.credentialUseCaseInit.Do(func() {
		c.credentialUseCase, err = c.initCredentialUseCase()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialUseCase"]; exists {
		return nil, storedErr
	}
	return c.credentialUseCase, nil
}

// initCredentialUseCase creates the credential use case wrapped with metrics.
func (c *Container) initCredentialUseCase() (credentialUseCase.CredentialUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for credential use case: %w", err)
	}

	useCase := credentialUseCase.NewCredentialUseCase(c.CredentialRepository(), c.TextCipher())
	return credentialUseCase.NewCredentialUseCaseWithMetrics(useCase, businessMetrics), nil
}
