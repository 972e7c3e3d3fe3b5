package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"telemed-service/internal/app/config"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/drivers/database"
	"telemed-service/internal/app/drivers/storage"
	"telemed-service/internal/app/services/shared/calendar"
	"telemed-service/internal/app/services/shared/redis"
	sharedStorage "telemed-service/internal/app/services/shared/storage"
	"telemed-service/internal/app/services/shared/tokenstore"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

// calendar-auth runs the one-time OAuth consent flow and seeds the token
// store that the HTTP server reads calendar credentials from.
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	var credentialsFile, storeKind string
	rootCmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and store the OAuth token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return authorize(log, credentialsFile, storeKind, driverConfig, internalConfig)
		},
	}
	rootCmd.Flags().StringVar(&credentialsFile, "credentials", internalConfig.Calendar.CredentialsFile, "path to the OAuth client credentials JSON")
	rootCmd.Flags().StringVar(&storeKind, "store", internalConfig.Calendar.TokenStore, "token store: file, redis or minio")

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("Calendar authorization failed")
	}
}

func authorize(log *logrus.Logger, credentialsFile, storeKind string, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) error {
	oauthConfig, err := calendar.NewOAuthConfigFromFile(credentialsFile)
	if err != nil {
		return fmt.Errorf("load OAuth client credentials: %w", err)
	}

	tokenStore, err := newTokenStore(storeKind, driverConfig, internalConfig)
	if err != nil {
		return fmt.Errorf("open token store: %w", err)
	}

	state := utils.GenerateUUID()
	authURL := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Printf("Open the following link in your browser and authorize calendar access:\n\n%s\n\nPaste the authorization code: ", authURL)

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("authorization code is empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	if token.RefreshToken == "" {
		log.Warn("Provider returned no refresh token; revoke the app grant and run again")
	}

	err = tokenStore.Save(ctx, token)
	if err != nil {
		return fmt.Errorf("save calendar token: %w", err)
	}

	log.WithFields(logrus.Fields{
		constvars.LoggingTokenStoreKey:  storeKind,
		constvars.LoggingTokenExpiryKey: token.Expiry.Format(time.RFC3339),
	}).Info("Calendar token saved")
	return nil
}

func newTokenStore(kind string, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (contracts.TokenStore, error) {
	backends := tokenstore.Backends{
		FilePath:   internalConfig.Calendar.TokenFile,
		RedisKey:   internalConfig.Calendar.TokenRedisKey,
		BucketName: internalConfig.Minio.BucketName,
		ObjectName: internalConfig.Calendar.TokenObject,
	}
	switch kind {
	case constvars.CalendarTokenStoreRedis:
		backends.RedisRepository = redis.NewRedisRepository(database.NewRedisClient(driverConfig))
	case constvars.CalendarTokenStoreMinio:
		backends.Storage = sharedStorage.NewMinioStorage(storage.NewMinio(driverConfig))
	}
	return tokenstore.New(kind, backends)
}
