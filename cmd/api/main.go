package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"influmarket/internal/adapter/api"
	"influmarket/internal/adapter/api/handler"
	apimiddleware "influmarket/internal/adapter/api/middleware"
	"influmarket/internal/adapter/api/router"
	"influmarket/internal/adapter/repository"
	"influmarket/internal/infrastructure/email"
	"influmarket/internal/infrastructure/firebase"
	"influmarket/internal/infrastructure/ratelimit"
	"influmarket/internal/infrastructure/storage"
	"influmarket/internal/infrastructure/websocket"
	"influmarket/internal/usecase"
	"influmarket/pkg/config"
	"influmarket/pkg/snowflake"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
		serviceAccountPath = ""
	} else {
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	influencerRepo := repository.NewFirestoreInfluencerRepository(firestoreClient)
	brandRepo := repository.NewFirestoreBrandRepository(firestoreClient)
	campaignRepo := repository.NewFirestoreCampaignRepository(firestoreClient)
	proposalRepo := repository.NewFirestoreProposalRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	nicheRepo := repository.NewFirestoreNicheRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		log.Fatalf("Failed to initialize id generator: %v", err)
	}

	registry := websocket.NewRegistry()
	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	mailer := email.NewClient(email.Config{
		Host:   cfg.SmtpHost,
		Port:   cfg.SmtpPort,
		Sender: cfg.SmtpSender,
	})

	resolver := usecase.NewActorResolver(userRepo, influencerRepo, brandRepo, campaignRepo, proposalRepo)

	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient, userRepo, influencerRepo, brandRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, influencerRepo, brandRepo, storageClient)
	campaignUseCase := usecase.NewCampaignUseCase(campaignRepo, resolver)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, campaignRepo, resolver)
	chatUseCase := usecase.NewChatUseCase(resolver, messageRepo, campaignRepo, influencerRepo, brandRepo, registry, limiter, node)
	exportUseCase := usecase.NewExportUseCase(campaignRepo, brandRepo, cfg.CsvDir)
	adminUseCase := usecase.NewAdminUseCase(userRepo, influencerRepo, brandRepo, campaignRepo)
	nicheUseCase := usecase.NewNicheUseCase(nicheRepo)
	fileUseCase := usecase.NewFileUseCase(storageClient, fileMetadataRepo)

	reminderUseCase := usecase.NewReminderUseCase(userRepo, influencerRepo, brandRepo, campaignRepo, proposalRepo, mailer)
	reminderUseCase.StartScheduler(ctx)

	handler.Setup(authUseCase, userUseCase, campaignUseCase, proposalUseCase, chatUseCase, exportUseCase, adminUseCase, nicheUseCase, fileUseCase)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(adminUseCase)

	wsHandler := handler.NewWebSocketHandler(chatUseCase, registry)

	router.Setup(e, wsHandler, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
