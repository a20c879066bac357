package app

import (
	"context"
	"fmt"

	relayHTTP "github.com/allisson/formrelay/internal/relay/http"
	relayService "github.com/allisson/formrelay/internal/relay/service"
	relayUseCase "github.com/allisson/formrelay/internal/relay/usecase"
)

// FormDeliveryClient returns the Web3Forms delivery client.
func (c *Container) FormDeliveryClient() relayService.FormDeliveryClient {
	c.deliveryClientInit.Do(func() {
		c.deliveryClient = relayService.NewWeb3FormsClient(relayService.Web3FormsConfig{
			URL:      c.config.FormDeliveryURL,
			FromName: c.config.FormFromName,
			Timeout:  c.config.FormDeliveryTimeout,
			RetryMax: c.config.FormDeliveryRetryMax,
		}, c.Logger())
	})
	return c.deliveryClient
}

// RelayUseCase returns the contact form relay use case.
func (c *Container) RelayUseCase() (relayUseCase.RelayUseCase, error) {
	var err error
	c.relayUseCaseInit.Do(func() {
		c.relayUseCase, err = c.initRelayUseCase()
		if err != nil {
			c.initErrors["relayUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["relayUseCase"]; exists {
		return nil, storedErr
	}
	return c.relayUseCase, nil
}

// RelayHandler returns the public form HTTP handler.
func (c *Container) RelayHandler() (*relayHTTP.RelayHandler, error) {
	var err error
	c.relayHandlerInit.Do(func() {
		c.relayHandler, err = c.initRelayHandler()
		if err != nil {
			c.initErrors["relayHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["relayHandler"]; exists {
		return nil, storedErr
	}
	return c.relayHandler, nil
}

// initRelayUseCase creates the relay use case wrapped with metrics.
func (c *Container) initRelayUseCase() (relayUseCase.RelayUseCase, error) {
	credentialUseCase, err := c.CredentialUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential use case for relay use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for relay use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for relay use case: %w", err)
	}

	passphrase, err := c.EncryptionPassphrase(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get passphrase for relay use case: %w", err)
	}

	useCase := relayUseCase.NewRelayUseCase(
		credentialUseCase,
		auditLogUseCase,
		c.FormDeliveryClient(),
		relayUseCase.Config{
			Passphrase:     passphrase,
			WhatsappNumber: c.config.WhatsappNumber,
		},
		c.Logger(),
	)
	return relayUseCase.NewRelayUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initRelayHandler creates the public form handler.
func (c *Container) initRelayHandler() (*relayHTTP.RelayHandler, error) {
	useCase, err := c.RelayUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get relay use case for relay handler: %w", err)
	}
	return relayHTTP.NewRelayHandler(useCase, c.Logger()), nil
}
